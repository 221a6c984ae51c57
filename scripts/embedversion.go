package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

func main() {
	cmd := exec.Command("git", "describe", "--tags", "--always")
	ret, err := cmd.Output()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't read git tags to embed version number: %v\n", err)
		os.Exit(1)
	}
	version := strings.TrimSpace(string(ret))

	out, err := os.Create("version_generated.go")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't create version_generated.go: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	fmt.Fprintf(out, "// Code generated by scripts/embedversion.go; DO NOT EDIT.\n\n"+
		"package main\n\nfunc init() {\n\tversion = %q\n}\n", version)
}
