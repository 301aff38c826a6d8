package main

import "github.com/fatih/color"

var (
	errColor  = color.New(color.FgRed)
	okColor   = color.New(color.FgGreen)
	hintColor = color.New(color.Faint)
)
