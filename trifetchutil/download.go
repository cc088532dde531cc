/*
Copyright © 2026 the TRIFetch authors.
This file is part of TRIFetch.

TRIFetch is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

TRIFetch is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with TRIFetch.  If not, see <http://www.gnu.org/licenses/>.
*/

package trifetchutil

import (
	"context"
	"fmt"

	"github.com/chepyle/trifetch"
	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
)

// Log receives progress information while records are being
// downloaded.
var Log logrus.FieldLogger = logrus.StandardLogger()

// Download retrieves the TRI records selected by the configuration,
// paging through the full result set, and saves them to the configured
// output file. Messages are sent to c as the download progresses.
//
// If the service stops returning rows before the reported record count
// is reached, the rows retrieved so far are still saved and the
// shortfall is logged as a warning.
func Download(cfg *viper.Viper, c chan string) error {
	q, err := queryFromConfig(cfg)
	if err != nil {
		return err
	}
	outputFile, err := checkOutputFile(cfg.GetString("OutputFile"))
	if err != nil {
		return err
	}

	client := &trifetch.Client{
		BaseURL: cfg.GetString("BaseURL"),
		Progress: func(fetched, total int) {
			Log.WithFields(logrus.Fields{
				"fetched": fetched,
				"total":   total,
			}).Info("downloading TRI records")
		},
	}

	table, err := client.Download(context.Background(), q)
	if err != nil {
		mismatch, ok := err.(*trifetch.CountMismatchError)
		if !ok {
			return err
		}
		Log.WithFields(logrus.Fields{
			"fetched": mismatch.Got,
			"total":   mismatch.Want,
		}).Warn("the service returned fewer records than it reported; saving what was retrieved")
	}

	c <- fmt.Sprintf("Retrieved %d records.\n", table.NRows())
	if err := saveTable(table, outputFile); err != nil {
		return err
	}
	c <- fmt.Sprintf("Saved %s.\n", outputFile)
	return nil
}
