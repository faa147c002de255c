// Package buildinfo хранит информацию о сборке, которую выводят бинарники
// по флагу -version. Значения подставляются при сборке:
//
//	go build -ldflags "-X github.com/InQaaaaGit/todo_fetch.git/internal/buildinfo.Version=v1.0.0"
package buildinfo

import (
	"fmt"
	"io"
)

const notAvailable = "N/A"

// Значения, задаваемые через -ldflags.
var (
	Version = notAvailable
	Date    = notAvailable
	Commit  = notAvailable
)

// Info содержит информацию о сборке приложения
type Info struct {
	Version string
	Date    string
	Commit  string
}

// Current возвращает информацию о текущей сборке. Пустые значения
// заменяются на "N/A".
func Current() *Info {
	return NewInfo(Version, Date, Commit)
}

// NewInfo создает новую структуру с информацией о сборке
func NewInfo(version, date, commit string) *Info {
	return &Info{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}

// Fprint выводит информацию о сборке в w
func (info *Info) Fprint(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		info.Version, info.Date, info.Commit)
	return err
}

// String возвращает строковое представление информации о сборке
func (info *Info) String() string {
	return fmt.Sprintf("Version: %s, Date: %s, Commit: %s", info.Version, info.Date, info.Commit)
}
