package e2e_test

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// generateWideJSON creates a JSON object with many fields at one level
func generateWideJSON(fieldCount int) map[string]interface{} {
	result := make(map[string]interface{})
	for i := 0; i < fieldCount; i++ {
		switch i % 4 {
		case 0:
			result[fmt.Sprintf("str_field_%d", i)] = fmt.Sprintf("value-%d", i)
		case 1:
			result[fmt.Sprintf("num_field_%d", i)] = i
		case 2:
			result[fmt.Sprintf("bool_field_%d", i)] = i%8 == 2
		default:
			result[fmt.Sprintf("null_field_%d", i)] = nil
		}
	}
	return result
}

func writeBenchFile(b *testing.B, doc interface{}) string {
	b.Helper()
	data, err := json.Marshal(doc)
	if err != nil {
		b.Fatal(err)
	}
	path := filepath.Join(b.TempDir(), "bench.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		b.Fatal(err)
	}
	return path
}

// buildBinary compiles jsonv once so the benchmark loop measures the
// validator, not the Go toolchain.
func buildBinary(b *testing.B) string {
	b.Helper()
	binary := filepath.Join(b.TempDir(), "jsonv")
	cmd := exec.Command("go", "build", "-o", binary, "../..")
	if output, err := cmd.CombinedOutput(); err != nil {
		b.Fatalf("go build failed: %v: %s", err, string(output))
	}
	return binary
}

func runBuilt(b *testing.B, binary, path string) {
	b.Helper()
	cmd := exec.Command(binary, "--quiet", path)
	if output, err := cmd.CombinedOutput(); err != nil {
		b.Fatalf("validation failed: %v: %s", err, string(output))
	}
}

func BenchmarkValidate_NestedDocument(b *testing.B) {
	path := writeBenchFile(b, generateNestedJSON(4, 4))
	binary := buildBinary(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runBuilt(b, binary, path)
	}
}

func BenchmarkValidate_WideDocument(b *testing.B) {
	path := writeBenchFile(b, generateWideJSON(2000))
	binary := buildBinary(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		runBuilt(b, binary, path)
	}
}
