// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diff produces unified diffs of two texts using the system 'diff' tool.
package diff

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
)

// Diff returns a unified diff of old and new, labeled with oldName and newName.
// It returns nil if the texts are identical.
func Diff(oldName string, old []byte, newName string, new []byte) ([]byte, error) {
	if bytes.Equal(old, new) {
		return nil, nil
	}

	f1, err := writeTempFile(old)
	if err != nil {
		return nil, err
	}
	defer os.Remove(f1)

	f2, err := writeTempFile(new)
	if err != nil {
		return nil, err
	}
	defer os.Remove(f2)

	// diff exits with status 1 when the inputs differ,
	// so only treat the error as fatal if nothing was printed.
	data, err := exec.Command("diff", "-u", "--label", oldName, "--label", newName, f1, f2).CombinedOutput()
	if err != nil && len(data) == 0 {
		return nil, fmt.Errorf("diff %s: %w", oldName, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	if !bytes.HasPrefix(data, []byte("--- ")) {
		return nil, fmt.Errorf("diff %s: unexpected output:\n%s", oldName, data)
	}
	return append([]byte(fmt.Sprintf("diff %s %s\n", oldName, newName)), data...), nil
}

func writeTempFile(data []byte) (string, error) {
	file, err := os.CreateTemp("", "iconmig-diff")
	if err != nil {
		return "", err
	}
	_, err = file.Write(data)
	if err1 := file.Close(); err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(file.Name())
		return "", err
	}
	return file.Name(), nil
}
