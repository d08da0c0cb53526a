/**
 *
 * (c) Copyright Ascensio System SIA 2023
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package main

import (
	"os"

	"github.com/urfave/cli/v2"
	"github.com/woocommerce/checkout-events/pkg/config"
	"github.com/woocommerce/checkout-events/pkg/log"
	"github.com/woocommerce/checkout-events/services/checkout/cmd"
)

func main() {
	app := &cli.App{
		Name:        "checkout",
		Usage:       "runs the checkout event service",
		Description: "Processes checkouts through prioritized observers of the checkout lifecycle events",
		Commands: []*cli.Command{
			cmd.Server(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.NewDefaultLogger(&config.LoggerConfig{}).Fatal(err.Error())
	}
}
