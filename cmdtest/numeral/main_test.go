package numeral

import (
	"flag"
	"testing"

	"github.com/vipcxj/numeral/cmd"
	"github.com/vipcxj/numeral/cmdtest"
)

var update = flag.Bool("update", false, "update test files with results")

func TestCLI(t *testing.T) {
	ts, err := cmdtest.Read("testdata")
	if err != nil {
		t.Fatal(err)
	}
	ts.Register("numeral", cmd.Execute)
	ts.Run(t, *update)
}
