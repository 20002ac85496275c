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

// Command reconcile runs the offline record-reconciliation batch: it fills
// missing postal codes from a scraped single-attribute table and assigns
// district codes from an extracted district table, then flushes the
// resolved attributes back to the canonical store.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/slpost/postal-directory-service/internal/reconcile/model"
	"github.com/slpost/postal-directory-service/internal/reconcile/service"
	"github.com/slpost/postal-directory-service/internal/reconcile/source"
	"github.com/slpost/postal-directory-service/internal/reconcile/store"
	"github.com/slpost/postal-directory-service/internal/system/config"
	"github.com/slpost/postal-directory-service/internal/system/log"
)

func main() {

	var (
		scrapedPath = flag.String("scraped", "", "Path to the scraped name-to-postal-code JSON table")
		pdfTextPath = flag.String("pdftext", "", "Path to the extracted district table text")
		dryRun      = flag.Bool("dry-run", false, "Report match results without persisting anything")
		pdsHome     = flag.String("pdsHome", "", "Path to the postal directory service home directory")
	)
	flag.Parse()

	if *scrapedPath == "" && *pdfTextPath == "" {
		fmt.Println("At least one of -scraped or -pdftext is required.")
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

	var scraped *model.ScrapedTable
	if *scrapedPath != "" {
		scraped, err = source.LoadScrapedTable(*scrapedPath)
		if err != nil {
			logger.Fatal("Failed to load scraped table.", log.Error(err))
		}
		logger.Info(fmt.Sprintf("Loaded scraped table with %d entries", scraped.Len()))
	}

	var district []model.DistrictRow
	if *pdfTextPath != "" {
		district, err = source.LoadDistrictTable(*pdfTextPath)
		if err != nil {
			logger.Fatal("Failed to load district table.", log.Error(err))
		}
		logger.Info(fmt.Sprintf("Loaded district table with %d rows", len(district)))
	}

	driver := service.NewReconcileService(store.NewReconcileStore())
	scrapedReport, districtReport, err := driver.Run(scraped, district, *dryRun)
	if err != nil {
		logger.Fatal("Reconciliation run failed.", log.Error(err))
	}

	if *scrapedPath != "" {
		fmt.Printf("scraped pass: scanned=%d matched=%d unmatched=%d\n",
			scrapedReport.Scanned, scrapedReport.Matched, scrapedReport.Unmatched)
	}
	if *pdfTextPath != "" {
		fmt.Printf("district pass: scanned=%d matched=%d unmatched=%d\n",
			districtReport.Scanned, districtReport.Matched, districtReport.Unmatched)
	}
	if *dryRun {
		fmt.Println("dry run: no changes were persisted")
	}
}
