package main

import "time"

const (
	defaultFPS      = 60
	statusBarHeight = 1
	messageTimeout  = 3 * time.Second
)

type ExportKind int

const (
	ExportPNG ExportKind = iota
	ExportText
	ExportClipboard
)

func (k ExportKind) String() string {
	switch k {
	case ExportPNG:
		return "png"
	case ExportText:
		return "text"
	default:
		return "clipboard"
	}
}
