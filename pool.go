package logsniff

import "sync"

const maxScratchCap = 64 * 1024

var printerPool = sync.Pool{
	New: func() any {
		return &printer{}
	},
}

func acquirePrinter() *printer {
	return printerPool.Get().(*printer)
}

func releasePrinter(p *printer) {
	if p == nil {
		return
	}
	p.clear()
	printerPool.Put(p)
}
