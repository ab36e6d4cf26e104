package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/tkdn/thinkgo/internal/applog"
)

var logger = applog.Default()

func main() {
	path := os.Getenv("OPEN_FILE_PATH")
	if path == "" {
		path = "bad_file"
	}
	if err := run(path, os.Stdout, logger); err != nil {
		os.Exit(1)
	}
}

// run opens path and copies its lines to w, logging each stage: try, then
// except or else, and finally. The file is closed on the way out whenever it
// was opened.
func run(path string, w io.Writer, log *applog.Logger) (err error) {
	var f *os.File
	defer func() {
		log.Info("cleaning up", "stage", "finally")
		if f == nil {
			return
		}
		log.Info("closing the file", "stage", "finally")
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	log.Info("open file", "stage", "try", "path", path)
	f, err = os.Open(path)
	if err != nil {
		log.Error(err, "stage", "except")
		return err
	}
	log.Info("file opened", "stage", "try")

	log.Info("reading lines", "stage", "else")
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fmt.Fprintln(w, "-->", scanner.Text())
	}
	return scanner.Err()
}
