// Copyright ClusterHQ Inc.  See LICENSE file for details.

package main

import "github.com/ClusterHQ/flocker-diagnostics/pkg/cli"

func main() {
	cli.Execute()
}
