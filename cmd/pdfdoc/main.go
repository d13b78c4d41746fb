// Command pdfdoc renders, converts and scripts paginated text
// documents from the command line.
package main

import "os"

func main() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}
