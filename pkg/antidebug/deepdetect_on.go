//go:build deepdetect

package antidebug

const deepDetect = true
