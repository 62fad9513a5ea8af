package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var (
	lock  sync.Mutex
	calls = make(map[string]int)
)

// Match compares the JSON encoding of obj against testdata/<test name>-<n>.json
// n counts the snapshots taken by the same test. A missing snapshot file is
// written from obj and the comparison passes.
func Match(t *testing.T, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	filename := nextFilename(t.Name())

	got, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not encode snapshot: %v", err)
	}

	expects, err := os.ReadFile(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			t.Fatalf("could not read snapshot %s: %v", filename, err)
		}

		if err := write(filename, got); err != nil {
			t.Fatalf("could not write snapshot %s: %v", filename, err)
		}

		return true
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(got), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func nextFilename(testName string) string {
	lock.Lock()
	defer lock.Unlock()

	call := calls[testName]
	calls[testName] = call + 1

	name := strings.NewReplacer("/", "_", " ", "_").Replace(testName)
	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))
}

func write(filename string, data []byte) error {
	logrus.WithField("filename", filename).Info("writing snapshot file")

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	return os.WriteFile(filename, append(data, '\n'), 0644)
}
