package common

func let(ok bool, yes, no byte) byte {
	if ok {
		return yes
	}
	return no
}
