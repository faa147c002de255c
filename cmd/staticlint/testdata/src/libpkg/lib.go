package libpkg

import "os"

func main() {
	os.Exit(1)
}

func Stop() {
	os.Exit(0)
}
