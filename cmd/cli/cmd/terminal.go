package cmd

import (
	"os"

	"margin-optimizer/adapters/backend"
	"margin-optimizer/controller"
	"margin-optimizer/core/ui"
	"margin-optimizer/core/view"
	"margin-optimizer/internal/config"
	"margin-optimizer/internal/logging"
)

// newClient builds a backend client from the global configuration.
func newClient() *backend.Client {
	cfg := config.Get()
	return backend.New(backend.Config{
		BaseURL: cfg.Backend.URL,
		Timeout: cfg.Backend.Timeout(),
	}, logging.Logger)
}

// terminalView renders controller output to stdout with a spinner while a
// request is in flight.
type terminalView struct {
	writer  *ui.Writer
	spinner *ui.Spinner
}

func newTerminalView() *terminalView {
	return &terminalView{
		writer: ui.NewWriter(os.Stdout, config.Get().Output.NoColor),
	}
}

func (v *terminalView) ShowLoading() {
	v.spinner = v.writer.NewSpinner("Analyzing...")
	v.spinner.Start()
}

func (v *terminalView) HideLoading() {
	if v.spinner != nil {
		v.spinner.Stop()
		v.spinner = nil
	}
}

func (v *terminalView) ShowError(message string) {
	v.writer.Error("%s", message)
}

func (v *terminalView) show(doc *view.Document) {
	ui.Render(v.writer, doc)
}

func (v *terminalView) ShowServiceAnalysis(doc *view.Document) { v.show(doc) }
func (v *terminalView) ShowRenewalAnalysis(doc *view.Document) { v.show(doc) }
func (v *terminalView) ShowVendorHistory(doc *view.Document)   { v.show(doc) }
func (v *terminalView) ShowStrategy(doc *view.Document)        { v.show(doc) }

func defaultFormat() string {
	if f := config.Get().Output.DefaultFormat; f != "" {
		return f
	}
	return "cli"
}

// newController wires a backend client and terminal view together.
func newController() (*controller.Controller, *backend.Client) {
	client := newClient()
	return controller.New(client, newTerminalView(), logging.Logger), client
}
