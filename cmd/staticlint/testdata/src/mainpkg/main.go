package main

import (
	"fmt"
	"os"
)

func helper() {
	os.Exit(2) // вне main допустимо
}

func main() {
	defer fmt.Println("never printed")

	if len(os.Args) > 5 {
		os.Exit(1) // want "os.Exit in main skips deferred calls"
	}

	func() {
		os.Exit(3) // want "os.Exit in main skips deferred calls"
	}()

	helper()
}
