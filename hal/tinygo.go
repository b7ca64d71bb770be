//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/sharpmem"
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     *memFramebuffer
	t      *tinyGoTime
}

// New returns a Pico (RP2040/RP2350) HAL driving a 144x168 Sharp memory LCD.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// LCD: SPI0 on GP18 (SCK) / GP19 (SDO), CS on GP17.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	cs := machine.GP17
	cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	// The panel clocks line addresses and pixels LSB first.
	if err := machine.SPI0.Configure(machine.SPIConfig{
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		Frequency: 2_000_000,
		Mode:      0,
		LSBFirst:  true,
	}); err != nil {
		logger.WriteLineString("hal: spi0 configure: " + err.Error())
	}

	lcd := sharpmem.New(machine.SPI0, cs)
	lcd.Configure(sharpmem.ConfigLS013B7DH05)
	if err := lcd.Clear(); err != nil {
		logger.WriteLineString("hal: lcd clear: " + err.Error())
	}

	return &tinyGoHAL{
		logger: logger,
		fb:     newMemFramebuffer(DisplayWidth, DisplayHeight, sharpPresenter(&lcd)),
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Time() Time       { return h.t }
func (h *tinyGoHAL) Clock() Clock     { return tinyGoClock{} }
func (h *tinyGoHAL) Chime() Chime     { return silentChime{} }

// sharpPresenter thresholds the RGB565 buffer into the 1-bit panel.
// The driver treats opaque black as "off" (white) and anything else as ink.
func sharpPresenter(lcd *sharpmem.Device) func(fb *memFramebuffer) error {
	paper := color.RGBA{A: 0xFF}
	ink := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	return func(fb *memFramebuffer) error {
		for y := 0; y < fb.h; y++ {
			row := y * fb.stride
			for x := 0; x < fb.w; x++ {
				off := row + x*2
				r, g, b := RGB888From565(uint16(fb.buf[off]) | uint16(fb.buf[off+1])<<8)
				c := paper
				if int(r)+int(g)+int(b) < 3*0x80 {
					c = ink
				}
				lcd.SetPixel(int16(x), int16(y), c)
			}
		}
		return lcd.Display()
	}
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
