package testing

import (
	"os"
	"path"
	"runtime"
)

func init() {
	// cd to the project root when running tests, so relative paths (logs
	// dir, db files) resolve the same way they do for cmd/server. Usage:
	//
	//   in some_test.go,
	//   import (
	//     _ "github.com/Claretdelgado/bd-calvillo/pkg/testing"
	//   )

	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "..", "..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}
