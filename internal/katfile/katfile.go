// Copyright (c) 2023 Paweł Rybak
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package katfile parses the NIST Known-Answer-Test (.rsp) file format used
// to exercise cryptocore's AES modes from cmd/aescli. It has no dependency
// on the core package itself, so it can be tested and reused independently
// of which engine consumes its output.
package katfile

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Direction is which half of a KAT file a Case came from.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

func (d Direction) String() string {
	if d == Decrypt {
		return "DECRYPT"
	}
	return "ENCRYPT"
}

// Case is one complete test vector: a KEY/IV pair, an input, and the
// expected output, tagged with its direction and sequence number.
type Case struct {
	Direction  Direction
	Count      int
	Key        []byte
	IV         []byte
	Plaintext  []byte
	Ciphertext []byte
}

// FileInfo is the <MODE><TYPE><KEYSIZE>.rsp filename broken into its
// components, e.g. "CBCMMT128.rsp" -> Mode="CBC", Type="MMT", KeySize=128.
type FileInfo struct {
	Mode    string
	Type    string
	KeySize int
}

var filenamePattern = regexp.MustCompile(`^([A-Za-z0-9]+?)(128|192|256)\.rsp$`)

// knownModes lists the mode tags this module's engines understand, longest
// first so a scan for a matching prefix never stops at a shorter alias of
// a longer one (e.g. "CFB" before "CFB128").
var knownModes = []string{"CFB128", "CFB8", "ECB", "CBC", "OFB", "CTR", "GCM"}

// ParseFilename extracts the mode/type/key-size triple from a KAT filename,
// e.g. "CBCMMT128.rsp" -> {Mode: "CBC", Type: "MMT", KeySize: 128}. Only
// the base name is consulted; any directory component is ignored.
func ParseFilename(path string) (FileInfo, error) {
	base := filepath.Base(path)

	m := filenamePattern.FindStringSubmatch(base)
	if m == nil {
		return FileInfo{}, errors.Errorf("katfile: %q does not match <MODE><TYPE><KEYSIZE>.rsp", base)
	}

	keySize, err := strconv.Atoi(m[2])
	if err != nil {
		return FileInfo{}, errors.Wrapf(err, "katfile: %q has an unparseable key size", base)
	}

	modeAndType := m[1]
	for _, mode := range knownModes {
		upper := strings.ToUpper(modeAndType)
		if strings.HasPrefix(upper, mode) {
			return FileInfo{
				Mode:    modeAndType[:len(mode)],
				Type:    modeAndType[len(mode):],
				KeySize: keySize,
			}, nil
		}
	}

	return FileInfo{}, errors.Errorf("katfile: %q has an unrecognized mode prefix", base)
}

// Parse reads a KAT file's contents and returns the test cases it
// describes, in the order they complete.
//
// Blank lines and lines starting with # are ignored. [ENCRYPT] and
// [DECRYPT] switch the current direction. Fields are "NAME = hexOrDecimal".
// A case is considered complete (and appended) once the direction's
// terminal field is seen: CIPHERTEXT for ENCRYPT, PLAINTEXT for DECRYPT.
func Parse(r io.Reader) ([]Case, error) {
	var cases []Case
	var dir Direction
	var cur Case
	haveDir := false

	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			switch strings.ToUpper(strings.Trim(line, "[]")) {
			case "ENCRYPT":
				dir = Encrypt
			case "DECRYPT":
				dir = Decrypt
			default:
				return nil, errors.Errorf("katfile: line %d: unknown direction %q", lineNo, line)
			}
			haveDir = true
			cur = Case{Direction: dir}
			continue
		}

		if !haveDir {
			return nil, errors.Errorf("katfile: line %d: field before any [ENCRYPT]/[DECRYPT] section", lineNo)
		}

		name, value, ok := splitField(line)
		if !ok {
			return nil, errors.Errorf("katfile: line %d: malformed field %q", lineNo, line)
		}

		switch name {
		case "COUNT":
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, errors.Wrapf(err, "katfile: line %d: bad COUNT", lineNo)
			}
			cur.Count = n
			cur.Direction = dir

		case "KEY":
			b, err := hex.DecodeString(value)
			if err != nil {
				return nil, errors.Wrapf(err, "katfile: line %d: bad KEY", lineNo)
			}
			cur.Key = b

		case "IV":
			b, err := hex.DecodeString(value)
			if err != nil {
				return nil, errors.Wrapf(err, "katfile: line %d: bad IV", lineNo)
			}
			cur.IV = b

		case "PLAINTEXT":
			b, err := hex.DecodeString(value)
			if err != nil {
				return nil, errors.Wrapf(err, "katfile: line %d: bad PLAINTEXT", lineNo)
			}
			cur.Plaintext = b

			if dir == Decrypt {
				cases = append(cases, cur)
			}

		case "CIPHERTEXT":
			b, err := hex.DecodeString(value)
			if err != nil {
				return nil, errors.Wrapf(err, "katfile: line %d: bad CIPHERTEXT", lineNo)
			}
			cur.Ciphertext = b

			if dir == Encrypt {
				cases = append(cases, cur)
			}

		default:
			return nil, errors.Errorf("katfile: line %d: unrecognized field %q", lineNo, name)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "katfile: scan failed")
	}

	return cases, nil
}

func splitField(line string) (name, value string, ok bool) {
	idx := strings.Index(line, "=")
	if idx < 0 {
		return "", "", false
	}

	name = strings.ToUpper(strings.TrimSpace(line[:idx]))
	value = strings.TrimSpace(line[idx+1:])
	return name, value, true
}

// FormatMismatch renders a human-readable diff line for a failed case;
// cmd/aescli uses it to build its zerolog failure report.
func FormatMismatch(c Case, got []byte) string {
	var want []byte
	if c.Direction == Encrypt {
		want = c.Ciphertext
	} else {
		want = c.Plaintext
	}

	return fmt.Sprintf("count=%d direction=%s want=%s got=%s",
		c.Count, c.Direction, hex.EncodeToString(want), hex.EncodeToString(got))
}
