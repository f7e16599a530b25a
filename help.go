package gocalc

import (
	"io/ioutil"

	"github.com/rakyll/statik/fs"

	_ "github.com/mattn/gocalc/statik"
)

//go:generate statik -f -src=help

// Help returns the command summary printed by the shell.
func Help() (string, error) {
	statikFS, err := fs.New()
	if err != nil {
		return "", err
	}
	f, err := statikFS.Open("/help.txt")
	if err != nil {
		return "", err
	}
	defer f.Close()

	b, err := ioutil.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
