package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Alessio99-a/fetchbind/internal/fetch"
	"github.com/Alessio99-a/fetchbind/internal/request"
)

var (
	getURL    string
	getMethod string
	getBody   string
)

// getCmd performs one configured request and prints the payload.
var getCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Execute a configured request once and print the JSON payload",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGet,
}

func init() {
	getCmd.Flags().StringVar(&getURL, "url", "", "override the request URL")
	getCmd.Flags().StringVarP(&getMethod, "method", "X", "", "override the request method")
	getCmd.Flags().StringVarP(&getBody, "body", "d", "", "override the request body")
}

func runGet(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	req, err := cfg.Request(name)
	if err != nil {
		return err
	}

	client, err := request.NewClient[json.RawMessage](cfg.BaseURL, logger)
	if err != nil {
		return err
	}

	coord := fetch.New[json.RawMessage](
		client,
		req.Options(),
		fetch.WithParent(cmd.Context()),
		fetch.WithLogger(logger),
	)

	var override *fetch.Options
	if getURL != "" || getMethod != "" || getBody != "" {
		override = &fetch.Options{URL: getURL, Method: getMethod, Body: getBody}
	}

	out := coord.Execute(override)
	if !out.OK() {
		return fmt.Errorf("request failed: %s", out.Err.Message)
	}

	var buf []byte
	if buf, err = json.MarshalIndent(json.RawMessage(out.Data), "", "  "); err != nil {
		buf = out.Data
	}
	fmt.Fprintln(os.Stdout, string(buf))
	return nil
}
