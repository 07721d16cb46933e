//go:build !cgo

package hal

type hostAudio struct{}

func newHostAudio() *hostAudio { return &hostAudio{} }

func (a *hostAudio) Click() {}
