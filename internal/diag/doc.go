// Package diag is the accumulating diagnostic reporter shared by all
// option-processing stages. Expected invalid input is recorded here and
// processing continues with best-effort defaults, so a single invocation can
// surface as many problems as possible before it ultimately fails.
package diag
