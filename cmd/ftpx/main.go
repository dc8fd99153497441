// ftpx transfers files and directory trees between the local filesystem and an FTP or SFTP server.
//
//	ftpx --url sftp://deploy@files.example.com get-dir /outbound ./outbound
//	ftpx --config ~/.ftpx.yml put-dir --create-folder /inbound ./reports
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "ftpx: %v\n", err)
		os.Exit(1)
	}
}
