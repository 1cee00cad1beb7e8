package docs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type operation struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Parameters  []struct {
		In     string `json:"in"`
		Schema *struct {
			Ref string `json:"$ref"`
		} `json:"schema"`
	} `json:"parameters"`
	Responses map[string]json.RawMessage `json:"responses"`
}

type document struct {
	Paths       map[string]map[string]operation `json:"paths"`
	Definitions map[string]json.RawMessage      `json:"definitions"`
}

func readDoc(t *testing.T) (document, string) {
	t.Helper()
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc), "el template no es JSON válido")
	return doc, raw
}

func TestDoc_RefsResolve(t *testing.T) {
	doc, raw := readDoc(t)

	refs := regexp.MustCompile(`"\$ref": "#/definitions/([^"]+)"`).FindAllStringSubmatch(raw, -1)
	require.NotEmpty(t, refs)
	for _, m := range refs {
		_, ok := doc.Definitions[m[1]]
		assert.True(t, ok, "definición inexistente: %s", m[1])
	}
}

var (
	reRouter  = regexp.MustCompile(`^// @Router (\S+) \[(\w+)\]`)
	reSummary = regexp.MustCompile(`^// @Summary (.+)`)
	reDesc    = regexp.MustCompile(`^// @Description (.+)`)
	reBody    = regexp.MustCompile(`^// @Param \w+ body (\S+) `)
	reResp    = regexp.MustCompile(`^// @(?:Success|Failure) (\d+) \{\w+\} (\S+)`)
)

// Cada bloque de anotaciones de los handlers tiene que estar reflejado tal cual.
func TestDoc_MatchesHandlerAnnotations(t *testing.T) {
	doc, _ := readDoc(t)

	files, err := filepath.Glob("../internal/domain/*/handler.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	seen := 0
	for _, f := range files {
		pkg := filepath.Base(filepath.Dir(f))
		b, err := os.ReadFile(f)
		require.NoError(t, err)

		var summary, desc, body string
		codes := map[string]string{}
		for _, line := range strings.Split(string(b), "\n") {
			switch {
			case reSummary.MatchString(line):
				summary = reSummary.FindStringSubmatch(line)[1]
			case reDesc.MatchString(line):
				desc = reDesc.FindStringSubmatch(line)[1]
			case reBody.MatchString(line):
				body = qualify(pkg, reBody.FindStringSubmatch(line)[1])
			case reResp.MatchString(line):
				m := reResp.FindStringSubmatch(line)
				codes[m[1]] = qualify(pkg, m[2])
			case reRouter.MatchString(line):
				m := reRouter.FindStringSubmatch(line)
				op, ok := doc.Paths[m[1]][m[2]]
				require.True(t, ok, "falta %s %s", m[2], m[1])
				assert.Equal(t, summary, op.Summary, "%s %s", m[2], m[1])
				assert.Equal(t, desc, op.Description, "%s %s", m[2], m[1])

				gotBody := ""
				for _, p := range op.Parameters {
					if p.In == "body" && p.Schema != nil {
						gotBody = strings.TrimPrefix(p.Schema.Ref, "#/definitions/")
					}
				}
				assert.Equal(t, body, gotBody, "%s %s", m[2], m[1])

				for code, typ := range codes {
					resp, ok := op.Responses[code]
					if assert.True(t, ok, "%s %s sin respuesta %s", m[2], m[1], code) {
						assert.Contains(t, string(resp), `"#/definitions/`+typ+`"`)
					}
				}
				assert.Len(t, op.Responses, len(codes), "%s %s", m[2], m[1])

				seen++
				summary, desc, body = "", "", ""
				codes = map[string]string{}
			}
		}
	}

	total := 0
	for _, ops := range doc.Paths {
		total += len(ops)
	}
	assert.Equal(t, seen, total, "el doc tiene operaciones sin handler")
}

func qualify(pkg, typ string) string {
	if strings.Contains(typ, ".") {
		return typ
	}
	return pkg + "." + typ
}
