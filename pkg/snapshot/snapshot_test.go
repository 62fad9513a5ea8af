package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	a := assert.New(t)

	obj := map[string]int{"pot": 30, "currentBet": 20}
	filename := filepath.Join("testdata", "TestMatch-0.json")
	_ = os.Remove(filename)
	defer os.Remove(filename)

	a.True(Match(t, obj))
	data, err := os.ReadFile(filename)
	a.NoError(err)
	a.Equal("{\n  \"currentBet\": 20,\n  \"pot\": 30\n}\n", string(data))

	// the second snapshot in the same test gets its own file
	second := filepath.Join("testdata", "TestMatch-1.json")
	_ = os.Remove(second)
	defer os.Remove(second)
	a.True(Match(t, []string{"a"}))
	a.FileExists(second)
}

func TestNextFilename(t *testing.T) {
	a := assert.New(t)
	a.Equal(filepath.Join("testdata", "TestX_sub_case-0.json"), nextFilename("TestX/sub case"))
	a.Equal(filepath.Join("testdata", "TestX_sub_case-1.json"), nextFilename("TestX/sub case"))
}
