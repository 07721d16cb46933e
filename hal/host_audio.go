//go:build cgo

package hal

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const clickSampleRate = 44100

// hostAudio plays the key click through Ebiten's audio package. The audio
// context is created on first use; Ebiten allows one per process.
type hostAudio struct {
	once   sync.Once
	mu     sync.Mutex
	player *audio.Player
}

func newHostAudio() *hostAudio { return &hostAudio{} }

var (
	audioCtxOnce sync.Once
	audioCtx     *audio.Context
)

func (a *hostAudio) Click() {
	a.once.Do(func() {
		audioCtxOnce.Do(func() { audioCtx = audio.NewContext(clickSampleRate) })
		a.player = audioCtx.NewPlayerFromBytes(clickPCM(clickSampleRate))
		a.player.SetVolume(0.4)
	})

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.player == nil {
		return
	}
	_ = a.player.Rewind()
	a.player.Play()
}

// clickPCM renders a short decaying tone as 16-bit little-endian stereo.
func clickPCM(rate int) []byte {
	const (
		freq     = 1800.0
		duration = 0.025
	)
	n := int(float64(rate) * duration)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(rate)
		env := math.Exp(-t * 200)
		v := int16(math.Sin(2*math.Pi*freq*t) * env * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
