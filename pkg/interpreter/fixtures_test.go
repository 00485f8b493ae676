package interpreter

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestFixtures(t *testing.T) {
	root := filepath.Join("testdata", "fixtures")
	for _, path := range fixturePaths(t, root) {
		file := readFixtureFile(t, path)
		group := strings.TrimSuffix(filepath.Base(path), ".yml")
		t.Run(group, func(t *testing.T) {
			for _, c := range file.Cases {
				c := c
				t.Run(c.Name, func(t *testing.T) {
					runFixtureCase(t, c)
				})
			}
		})
	}
}
