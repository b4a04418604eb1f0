// uccagen enumerates unsafe combinations of control actions from an
// STPA control-structure snapshot and reports the ranked candidates.
package main

import "github.com/airvair/STAMPWebTool-sub001/internal/cli"

func main() {
	cli.Execute()
}
