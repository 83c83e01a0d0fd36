// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	outer := []string{"unitigseq/internal/app", "unitigseq/internal/cli", "unitigseq/internal/cmdutil", "unitigseq/cmd/"}
	bans := map[string][]string{
		"unitigseq/internal/nucleotide": {"unitigseq/internal/"},
		"unitigseq/internal/seqtable": append([]string{
			"unitigseq/internal/kmertable", "unitigseq/internal/reconstruct", "unitigseq/internal/writers",
		}, outer...),
		"unitigseq/internal/kmertable": append([]string{
			"unitigseq/internal/reconstruct", "unitigseq/internal/writers",
		}, outer...),
		"unitigseq/internal/reconstruct": append([]string{
			"unitigseq/internal/writers",
		}, outer...),
		"unitigseq/internal/writers": append([]string{
			"unitigseq/internal/kmertable", "unitigseq/internal/reconstruct",
		}, outer...),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "unitigseq/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if imp != prefix {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "unitigseq/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
