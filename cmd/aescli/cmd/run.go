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

package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jhafranco/cryptocore"
	"github.com/jhafranco/cryptocore/internal/katfile"
)

var runCmd = &cobra.Command{
	Use:   "run <vectors.rsp>...",
	Short: "Run one or more .rsp KAT files and report pass/fail",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runKAT,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runKAT(_ *cobra.Command, paths []string) error {
	var total, failed int

	for _, path := range paths {
		info, err := katfile.ParseFilename(path)
		if err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}

		cases, err := katfile.Parse(f)
		f.Close()
		if err != nil {
			return err
		}

		for _, c := range cases {
			total++

			got, err := runCase(info, c)
			if err != nil {
				failed++
				log.Error().Str("file", path).Int("count", c.Count).Err(err).Msg("case errored")
				continue
			}

			want := c.Ciphertext
			if c.Direction == katfile.Decrypt {
				want = c.Plaintext
			}

			if !bytes.Equal(got, want) {
				failed++
				log.Error().Str("file", path).Msg(katfile.FormatMismatch(c, got))
				continue
			}

			if verbose {
				log.Info().Str("file", path).Int("count", c.Count).Str("direction", c.Direction.String()).Msg("pass")
			}
		}
	}

	log.Info().Int("total", total).Int("failed", failed).Msg("run complete")

	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, total)
	}
	return nil
}

// runCase dispatches one KAT case to the mode its file declared and
// returns the actual output for comparison against the case's expected
// field.
func runCase(info katfile.FileInfo, c katfile.Case) ([]byte, error) {
	keySize := info.KeySize
	encrypting := c.Direction == katfile.Encrypt

	switch info.Mode {
	case "ECB":
		return runEngine(cryptocore.ECB, keySize, c, encrypting)
	case "CBC":
		return runEngine(cryptocore.CBC, keySize, c, encrypting)
	case "CFB8":
		if encrypting {
			return cryptocore.EncryptCFB8(keySize, c.Key, c.IV, c.Plaintext)
		}
		return cryptocore.DecryptCFB8(keySize, c.Key, c.IV, c.Ciphertext)
	case "CFB128":
		if encrypting {
			return cryptocore.EncryptCFB128(keySize, c.Key, c.IV, c.Plaintext)
		}
		return cryptocore.DecryptCFB128(keySize, c.Key, c.IV, c.Ciphertext)
	case "OFB":
		if encrypting {
			return cryptocore.EncryptOFB(keySize, c.Key, c.IV, c.Plaintext)
		}
		return cryptocore.DecryptOFB(keySize, c.Key, c.IV, c.Ciphertext)
	case "CTR":
		if encrypting {
			return cryptocore.EncryptCTR(keySize, c.Key, c.IV, c.Plaintext)
		}
		return cryptocore.DecryptCTR(keySize, c.Key, c.IV, c.Ciphertext)
	default:
		return nil, fmt.Errorf("aescli: unsupported mode %q", info.Mode)
	}
}

func runEngine(mode cryptocore.Mode, keySize int, c katfile.Case, encrypting bool) ([]byte, error) {
	e, err := cryptocore.NewEngine(mode, cryptocore.NoPadding)
	if err != nil {
		return nil, err
	}

	if err := e.SetKey(keySize, c.Key, c.IV); err != nil {
		return nil, err
	}

	if encrypting {
		return e.Encrypt(c.Plaintext)
	}
	return e.Decrypt(c.Ciphertext)
}
