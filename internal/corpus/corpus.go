// Package corpus loads the external text resources of a session: the
// ciphertext, the crib mask and the dictionary. All files are plain
// ASCII but input is NFC-normalized and uppercased first, so text pasted
// from other tools still reads cleanly.
package corpus

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/abdorrahmani/polysolve/internal/alphabet"
)

// LoadCiphertext reads the first whitespace-delimited token of the file
// and converts it to letter indices.
func LoadCiphertext(path string) ([]byte, error) {
	token, err := firstToken(path)
	if err != nil {
		return nil, err
	}
	ct, err := alphabet.ToIndices(clean(token))
	if err != nil {
		return nil, fmt.Errorf("ciphertext file %s: %w", path, err)
	}
	if len(ct) == 0 {
		return nil, fmt.Errorf("ciphertext file %s is empty", path)
	}
	return ct, nil
}

// LoadBatch reads one ciphertext per line, skipping blank lines.
func LoadBatch(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open batch file: %w", err)
	}
	defer f.Close()

	var batch [][]byte
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		ct, err := alphabet.ToIndices(clean(text))
		if err != nil {
			return nil, fmt.Errorf("batch file %s line %d: %w", path, line, err)
		}
		batch = append(batch, ct)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	if len(batch) == 0 {
		return nil, fmt.Errorf("batch file %s is empty", path)
	}
	return batch, nil
}

// LoadCribMask reads a crib mask: A-Z for known plaintext letters and
// underscores for unknown positions.
func LoadCribMask(path string) (string, error) {
	token, err := firstToken(path)
	if err != nil {
		return "", err
	}
	mask := clean(token)
	for i := 0; i < len(mask); i++ {
		c := mask[i]
		if c != '_' && (c < 'A' || c > 'Z') {
			return "", fmt.Errorf("crib file %s position %d: expected A-Z or '_', got %q", path, i, c)
		}
	}
	return mask, nil
}

func firstToken(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return "", fmt.Errorf("file %s is empty", path)
	}
	return scanner.Text(), nil
}

func clean(s string) string {
	return strings.ToUpper(norm.NFC.String(s))
}
