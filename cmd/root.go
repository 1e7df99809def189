/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

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
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var runID string
var profileFlag string
var stopProfile func()

var rootCmd = &cobra.Command{
	Use:   "lsmtoolbox",
	Short: "Level-set method toolbox for Hamilton-Jacobi PDEs",
	Long: `
lsmtoolbox solves Hamilton-Jacobi level-set equations on fixed Cartesian
grids: advection, curvature flow, and Fast Marching reinitialization.

lsmtoolbox advect|curvature|reinit|eikonal`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		runID = uuid.New().String()
		fmt.Printf("run %s starting\n", runID)
		switch profileFlag {
		case "cpu":
			stopProfile = profile.Start(profile.CPUProfile).Stop
		case "mem":
			stopProfile = profile.Start(profile.MemProfile).Stop
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if stopProfile != nil {
			stopProfile()
		}
		fmt.Printf("run %s finished\n", runID)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "scenario config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&profileFlag, "profile", "", "profile the run: cpu, mem, or empty to disable")
}

// initConfig points viper at the --config file (when given), enables
// LSM_-prefixed environment variables, and reads the file into viper. No
// flag is bound to viper, and no subcommand reads its settings from viper:
// scenarios come from the --scenario file and the command's own flags.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
	viper.SetEnvPrefix("LSM")
	viper.AutomaticEnv()
	if cfgFile != "" {
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "lsmtoolbox: config read failed: %v\n", err)
		}
	}
}
