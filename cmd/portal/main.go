package main

import (
	"KecPortal/internal/bootstrap"
	pkg "KecPortal/pkg/routes"

	"go.uber.org/fx"
)

func main() {
	bootstrap.Loadenv()
	app := fx.New(
		pkg.EchoModules,
	)

	app.Run()
}
