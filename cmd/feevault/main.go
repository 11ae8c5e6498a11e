package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"path"

	"github.com/urfave/cli/v2"
)

var (
	feevaultDataDir = defaultDataDir()
	statePath       = path.Join(feevaultDataDir, "state.json")
)

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "feevault operator CLI"
	app.Usage = "Command line interface for feevaultd daemon operators"
	app.Commands = append(
		app.Commands,
		&config,
		&supportasset,
		&listassets,
		&pendingreward,
		&claim,
		&claimoperatorfee,
		&listwithdrawals,
		&transferownership,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func defaultDataDir() string {
	homeDir, _ := os.UserHomeDir()
	return path.Join(homeDir, ".feevault-operator")
}

func getState() (map[string]string, error) {
	data := map[string]string{}

	file, err := ioutil.ReadFile(statePath)
	if err != nil {
		return nil, errors.New("get config state error: try 'config init'")
	}
	json.Unmarshal(file, &data)

	return data, nil
}

func setState(data map[string]string) error {
	if _, err := os.Stat(feevaultDataDir); os.IsNotExist(err) {
		os.Mkdir(feevaultDataDir, os.ModeDir|0755)
	}

	if _, err := os.Stat(statePath); os.IsNotExist(err) {
		if err := ioutil.WriteFile(statePath, []byte("{}"), 0644); err != nil {
			return err
		}
	}

	currentData, err := getState()
	if err != nil {
		return err
	}

	mergedData := merge(currentData, data)

	jsonString, err := json.Marshal(mergedData)
	if err != nil {
		return err
	}
	if err := ioutil.WriteFile(statePath, jsonString, 0755); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}

	return nil
}

func merge(maps ...map[string]string) map[string]string {
	merge := make(map[string]string, 0)
	for _, m := range maps {
		for k, v := range m {
			merge[k] = v
		}
	}
	return merge
}

// callDaemon performs one request against the daemon's HTTP interface using
// the locally configured address and requester identity.
func callDaemon(method, endpoint string, body interface{}) ([]byte, error) {
	state, err := getState()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequest(method, state["rpcserver"]+endpoint, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if requester := state["requester"]; requester != "" {
		req.Header.Set("X-Feevault-Requester", requester)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var out bytes.Buffer
	if _, err := out.ReadFrom(res.Body); err != nil {
		return nil, err
	}
	if res.StatusCode >= 400 {
		reply := struct {
			Error string `json:"error"`
		}{}
		if err := json.Unmarshal(out.Bytes(), &reply); err == nil && reply.Error != "" {
			return nil, errors.New(reply.Error)
		}
		return nil, fmt.Errorf("daemon replied with status %d", res.StatusCode)
	}

	return out.Bytes(), nil
}

func printRespJSON(resp []byte) {
	var indented bytes.Buffer
	if err := json.Indent(&indented, resp, "", "\t"); err != nil {
		fmt.Println(string(resp))
		return
	}
	fmt.Println(indented.String())
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[feevault] %v\n", err)
	os.Exit(1)
}
