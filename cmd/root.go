/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var cfgFile string

// errReported is returned by commands that already printed their failure.
var errReported = errors.New("error already reported")

var rootCmd = &cobra.Command{
	Use:   "lindatran",
	Short: "CLI client for the LINDAT LLM translation service",
	Long: `A CLI client that sends text or whole documents to a LINDAT-style
translation service (POST <base-url>/<model>) and prints or saves the result.

Commands:
  text   translate text from a file or standard input, print the result
  file   translate a document and save the translated bytes

Settings can also come from LINDATRAN_* environment variables, a .env file,
or $HOME/.lindatran.yaml.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lindatran.yaml)")
	rootCmd.PersistentFlags().String("model", defaultModel, "Model identifier")
	rootCmd.PersistentFlags().Duration("timeout", 0, "HTTP request timeout, 0 waits indefinitely")
	rootCmd.PersistentFlags().String("proxy", "", "HTTP(S) or SOCKS5 proxy URL (default: HTTP_PROXY/HTTPS_PROXY)")
	rootCmd.PersistentFlags().String("no-proxy", "", "Comma-separated hosts that bypass --proxy")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log request details to stderr")
}
