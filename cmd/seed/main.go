/*
 * Copyright (c) 2025, SLPost Labs. (https://slpost.dev).
 *
 * SLPost Labs licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Command seed bootstraps the canonical directory from an exported
// post-office dataset: offices are upserted keyed on postal code, entries
// without a real code are skipped, and the default administrator is created
// when credentials are supplied.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/slpost/postal-directory-service/internal/seed/model"
	"github.com/slpost/postal-directory-service/internal/seed/service"
	"github.com/slpost/postal-directory-service/internal/seed/source"
	"github.com/slpost/postal-directory-service/internal/seed/store"
	"github.com/slpost/postal-directory-service/internal/system/config"
	"github.com/slpost/postal-directory-service/internal/system/log"
)

func main() {

	var (
		dataPath      = flag.String("data", "", "Path to the exported post-office JSON dataset")
		adminName     = flag.String("adminName", "Super Admin", "Name of the default administrator")
		adminEmail    = flag.String("adminEmail", "admin@slpost.dev", "Email of the default administrator")
		adminPassword = flag.String("adminPassword", "", "Password of the default administrator (falls back to PDS_ADMIN_PASSWORD; empty skips the bootstrap)")
		pdsHome       = flag.String("pdsHome", "", "Path to the postal directory service home directory")
	)
	flag.Parse()

	if *dataPath == "" {
		fmt.Println("-data is required.")
		flag.Usage()
		os.Exit(2)
	}

	home := *pdsHome
	if home == "" {
		home = os.Getenv("PDS_HOME")
	}
	if home == "" {
		dir, err := os.Getwd()
		if err != nil {
			fmt.Println("Failed to get current working directory.", err)
			os.Exit(1)
		}
		home = dir
	}

	envFiles, err := filepath.Glob("config/*.env")
	if err == nil && len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	pdsConfig, err := config.LoadConfig(home, "/repository/conf/deployment.yaml")
	if err != nil {
		fmt.Println("Failed to load configuration.", err)
		os.Exit(1)
	}
	if err := config.InitializePDSRuntime(home, pdsConfig); err != nil {
		fmt.Println("Failed to initialize runtime.", err)
		os.Exit(1)
	}
	if err := log.Init(pdsConfig.Log.LogLevel); err != nil {
		fmt.Println("Failed to initialize logger.", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	records, err := source.LoadSeedExport(*dataPath)
	if err != nil {
		logger.Fatal("Failed to load seed export.", log.Error(err))
	}
	logger.Info(fmt.Sprintf("Loaded seed export with %d entries", len(records)))

	password := *adminPassword
	if password == "" {
		password = os.Getenv("PDS_ADMIN_PASSWORD")
	}
	if password == "" {
		logger.Warn("No administrator password supplied; skipping the default administrator bootstrap.")
	}

	driver := service.NewSeedService(store.NewSeedStore())
	report, err := driver.Run(records, model.AdminBootstrap{
		Name:     *adminName,
		Email:    *adminEmail,
		Password: password,
	})
	if err != nil {
		logger.Fatal("Seed import failed.", log.Error(err))
	}

	fmt.Printf("seed import: upserted=%d skipped=%d failed=%d\n",
		report.Upserted, report.Skipped, report.Failed)
	if report.AdminCreated {
		fmt.Printf("default administrator created: %s\n", *adminEmail)
	}
}
