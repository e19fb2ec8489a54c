//go:build wheelist_debug

package wheelist

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
