// Package ui styles the few lines j2render prints for humans.
package ui
