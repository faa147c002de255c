package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// ExitInMainAnalyzer запрещает прямой вызов os.Exit в функции main пакета main.
// os.Exit не выполняет отложенные вызовы: не дожидается завершения цикла
// событий, не сбрасывает логгер и не останавливает сервер.
var ExitInMainAnalyzer = &analysis.Analyzer{
	Name:     "exitinmain",
	Doc:      "reports direct os.Exit calls in func main of package main; deferred calls do not run after os.Exit",
	Run:      runExitInMain,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func runExitInMain(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.WithStack([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push || !insideMainFunc(stack) {
			return true
		}

		call := n.(*ast.CallExpr)
		if isOsExit(pass.TypesInfo, call) {
			pass.Reportf(call.Pos(), "os.Exit in main skips deferred calls; return from main instead")
		}
		return true
	})

	return nil, nil
}

// insideMainFunc сообщает, находится ли узел внутри func main (включая литералы функций в ней)
func insideMainFunc(stack []ast.Node) bool {
	for _, n := range stack {
		if fn, ok := n.(*ast.FuncDecl); ok {
			return fn.Recv == nil && fn.Name.Name == "main"
		}
	}
	return false
}

func isOsExit(info *types.Info, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Exit" {
		return false
	}
	fn, ok := info.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return false
	}
	return fn.Pkg().Path() == "os"
}
