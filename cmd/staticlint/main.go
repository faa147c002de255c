// Command staticlint запускает multichecker проекта: стандартные анализаторы
// golang.org/x/tools, staticcheck, go-critic, errcheck и exitinmain.
//
// Запуск:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/composite"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/deepequalerrors"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/ifaceassert"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilfunc"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/stdmethods"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/tests"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/go-critic/go-critic/checkers/analyzer"
	"github.com/kisielk/errcheck/errcheck"
)

// standardAnalyzers содержит анализаторы из golang.org/x/tools, важные для
// кода с горутинами, контекстами и HTTP.
var standardAnalyzers = []*analysis.Analyzer{
	assign.Analyzer,
	atomic.Analyzer,
	bools.Analyzer,
	composite.Analyzer,
	copylock.Analyzer,
	deepequalerrors.Analyzer,
	errorsas.Analyzer,
	httpresponse.Analyzer,
	ifaceassert.Analyzer,
	loopclosure.Analyzer,
	lostcancel.Analyzer,
	nilfunc.Analyzer,
	nilness.Analyzer,
	printf.Analyzer,
	shadow.Analyzer,
	stdmethods.Analyzer,
	structtag.Analyzer,
	tests.Analyzer,
	unmarshal.Analyzer,
	unreachable.Analyzer,
	unusedresult.Analyzer,
}

// excludedChecks перечисляет проверки staticcheck, которые не подходят проекту.
// ST1003 требует английских имен без подчеркиваний, ST1000 требует комментарий пакета в каждом файле.
var excludedChecks = map[string]bool{
	"ST1000": true,
	"ST1003": true,
}

// analyzers собирает полный набор анализаторов
func analyzers() []*analysis.Analyzer {
	checks := []*analysis.Analyzer{ExitInMainAnalyzer}
	checks = append(checks, standardAnalyzers...)
	checks = append(checks, analyzer.Analyzer, errcheck.Analyzer)

	for _, group := range [][]*lint.Analyzer{staticcheck.Analyzers, simple.Analyzers, stylecheck.Analyzers} {
		checks = append(checks, selectChecks(group)...)
	}

	return checks
}

// selectChecks оставляет анализаторы SA, S и ST, кроме excludedChecks
func selectChecks(group []*lint.Analyzer) []*analysis.Analyzer {
	var out []*analysis.Analyzer
	for _, a := range group {
		name := a.Analyzer.Name
		if excludedChecks[name] {
			continue
		}
		if strings.HasPrefix(name, "SA") || strings.HasPrefix(name, "S1") || strings.HasPrefix(name, "ST") {
			out = append(out, a.Analyzer)
		}
	}
	return out
}

func main() {
	multichecker.Main(analyzers()...)
}
