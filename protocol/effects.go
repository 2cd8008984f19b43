package protocol

import "fmt"

// Effect selects the active lighting mode. Wire codes 0 through 10; any
// other selector byte is invalid.
type Effect uint8

const (
	EffectOff Effect = iota
	EffectGlorious
	EffectSingleColor
	EffectBreathing
	EffectTail
	EffectSeamlessBreathing
	EffectConstantRGB
	EffectRave
	EffectRandom
	EffectWave
	EffectSingleBreathing
)

var effectNames = [...]string{
	EffectOff:               "off",
	EffectGlorious:          "glorious",
	EffectSingleColor:       "single-color",
	EffectBreathing:         "breathing",
	EffectTail:              "tail",
	EffectSeamlessBreathing: "seamless-breathing",
	EffectConstantRGB:       "constant-rgb",
	EffectRave:              "rave",
	EffectRandom:            "random",
	EffectWave:              "wave",
	EffectSingleBreathing:   "single-breathing",
}

func (e Effect) String() string {
	if int(e) < len(effectNames) {
		return effectNames[e]
	}
	return fmt.Sprintf("Effect(%d)", uint8(e))
}

// ParseEffect resolves an effect by its String name.
func ParseEffect(s string) (Effect, error) {
	for i, name := range effectNames {
		if name == s {
			return Effect(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEffect, s)
}

func effectFromCode(code uint8) (Effect, error) {
	if int(code) >= len(effectNames) {
		return 0, fmt.Errorf("%w: 0x%02x", ErrUnknownEffect, code)
	}
	return Effect(code), nil
}

// Color slot capacities of the variable-length effect blocks.
const (
	MaxBreathingColors   = 7
	MaxConstantRGBColors = 6
	MaxRaveColors        = 2
)

// EffectParameters holds every effect's parameter block. The wire carries
// all ten blocks in fixed order no matter which effect is active, so
// switching effects never loses the others' settings. The blocks stay a
// plain record here; Active returns the tagged view.
type EffectParameters struct {
	Glorious          GloriousParams
	SingleColor       SingleColorParams
	Breathing         BreathingParams
	Tail              TailParams
	SeamlessBreathing SeamlessBreathingParams
	ConstantRGB       ConstantRGBParams
	Rave              RaveParams
	Random            RandomParams
	Wave              WaveParams
	SingleBreathing   SingleBreathingParams
}

// Active returns the parameter block for e as its concrete type, or nil
// for EffectOff and unknown values.
func (p *EffectParameters) Active(e Effect) any {
	switch e {
	case EffectGlorious:
		return p.Glorious
	case EffectSingleColor:
		return p.SingleColor
	case EffectBreathing:
		return p.Breathing
	case EffectTail:
		return p.Tail
	case EffectSeamlessBreathing:
		return p.SeamlessBreathing
	case EffectConstantRGB:
		return p.ConstantRGB
	case EffectRave:
		return p.Rave
	case EffectRandom:
		return p.Random
	case EffectWave:
		return p.Wave
	case EffectSingleBreathing:
		return p.SingleBreathing
	}
	return nil
}

// GloriousParams drives the stock rainbow sweep.
type GloriousParams struct {
	Speed     uint8 // low nibble
	Direction uint8 // 0 = up, 1 = down
}

func (p GloriousParams) String() string {
	return fmt.Sprintf("speed=%d direction=%d", p.Speed, p.Direction)
}

// SingleColorParams is a static single color with brightness.
type SingleColorParams struct {
	Brightness uint8 // low nibble
	Color      Color
}

func (p SingleColorParams) String() string {
	return fmt.Sprintf("brightness=%d color=%s", p.Brightness, p.Color)
}

// BreathingParams cycles through up to seven colors. The wire block always
// carries seven color slots plus a count byte; the count is derived from
// len(Colors) on encode and bounds the slots kept on decode.
type BreathingParams struct {
	Speed  uint8
	Colors []Color // at most MaxBreathingColors
}

func (p BreathingParams) String() string {
	return fmt.Sprintf("speed=%d colors=%s", p.Speed, colorList(p.Colors))
}

// TailParams is the trailing-light mode.
type TailParams struct {
	Speed      uint8
	Brightness uint8
}

func (p TailParams) String() string {
	return fmt.Sprintf("speed=%d brightness=%d", p.Speed, p.Brightness)
}

// SeamlessBreathingParams is full-spectrum breathing; speed only.
type SeamlessBreathingParams struct {
	Speed uint8
}

func (p SeamlessBreathingParams) String() string {
	return fmt.Sprintf("speed=%d", p.Speed)
}

// ConstantRGBParams assigns six fixed zone colors. The wire has no count
// byte, so the block always represents exactly six slots; shorter caller
// lists are zero padded.
type ConstantRGBParams struct {
	Colors []Color // at most MaxConstantRGBColors
}

func (p ConstantRGBParams) String() string {
	return fmt.Sprintf("colors=%s", colorList(p.Colors))
}

// RaveParams strobes between two colors.
type RaveParams struct {
	Speed      uint8
	Brightness uint8
	Colors     []Color // at most MaxRaveColors
}

func (p RaveParams) String() string {
	return fmt.Sprintf("speed=%d brightness=%d colors=%s", p.Speed, p.Brightness, colorList(p.Colors))
}

// RandomParams flashes random colors; speed only.
type RandomParams struct {
	Speed uint8
}

func (p RandomParams) String() string {
	return fmt.Sprintf("speed=%d", p.Speed)
}

// WaveParams is the color wave mode.
type WaveParams struct {
	Speed      uint8
	Brightness uint8
}

func (p WaveParams) String() string {
	return fmt.Sprintf("speed=%d brightness=%d", p.Speed, p.Brightness)
}

// SingleBreathingParams breathes a single configured color.
type SingleBreathingParams struct {
	Speed uint8
	Color Color
}

func (p SingleBreathingParams) String() string {
	return fmt.Sprintf("speed=%d color=%s", p.Speed, p.Color)
}

func colorList(colors []Color) string {
	if len(colors) == 0 {
		return "none"
	}
	s := ""
	for i, c := range colors {
		if i > 0 {
			s += ","
		}
		s += c.String()
	}
	return s
}

// checkCapacity rejects color lists that overflow their fixed wire slots.
// Called before any encode write so a failed marshal leaves nothing
// half-built.
func (p *EffectParameters) checkCapacity() error {
	if n := len(p.Breathing.Colors); n > MaxBreathingColors {
		return fmt.Errorf("%w: %d breathing colors, max %d", ErrCapacityExceeded, n, MaxBreathingColors)
	}
	if n := len(p.ConstantRGB.Colors); n > MaxConstantRGBColors {
		return fmt.Errorf("%w: %d constant-rgb colors, max %d", ErrCapacityExceeded, n, MaxConstantRGBColors)
	}
	if n := len(p.Rave.Colors); n > MaxRaveColors {
		return fmt.Errorf("%w: %d rave colors, max %d", ErrCapacityExceeded, n, MaxRaveColors)
	}
	return nil
}

func (p *EffectParameters) decode(r *reader) error {
	if err := p.Glorious.decode(r); err != nil {
		return err
	}
	if err := p.SingleColor.decode(r); err != nil {
		return err
	}
	if err := p.Breathing.decode(r); err != nil {
		return err
	}
	if err := p.Tail.decode(r); err != nil {
		return err
	}
	if err := p.SeamlessBreathing.decode(r); err != nil {
		return err
	}
	return p.ConstantRGB.decode(r)
}

// decodeTail parses the blocks that follow the opaque 12-byte region of
// the config report.
func (p *EffectParameters) decodeTail(r *reader) error {
	if err := p.Rave.decode(r); err != nil {
		return err
	}
	if err := p.Random.decode(r); err != nil {
		return err
	}
	if err := p.Wave.decode(r); err != nil {
		return err
	}
	return p.SingleBreathing.decode(r)
}

func (p *GloriousParams) decode(r *reader) error {
	ctrl, err := r.u8()
	if err != nil {
		return err
	}
	dir, err := r.u8()
	if err != nil {
		return err
	}
	p.Speed = ctrl & 0x0f
	p.Direction = dir
	return nil
}

// encode writes the block with its control sentinel. Effects without a
// brightness nibble carry a fixed 0x40 marker in the control byte; the
// marker is not visible on the decode side and is hard-coded per effect.
func (p GloriousParams) encode(w *writer) {
	w.put(p.Speed&0x0f|0x40, p.Direction)
}

func (p *SingleColorParams) decode(r *reader) error {
	ctrl, err := r.u8()
	if err != nil {
		return err
	}
	c, err := r.colorRBG()
	if err != nil {
		return err
	}
	p.Brightness = ctrl >> 4
	p.Color = c
	return nil
}

func (p SingleColorParams) encode(w *writer) {
	w.put(p.Brightness << 4)
	w.putColorRBG(p.Color)
}

func (p *BreathingParams) decode(r *reader) error {
	ctrl, err := r.u8()
	if err != nil {
		return err
	}
	count, err := r.u8()
	if err != nil {
		return err
	}
	if count > MaxBreathingColors {
		count = MaxBreathingColors
	}
	colors := make([]Color, 0, count)
	for i := 0; i < MaxBreathingColors; i++ {
		c, err := r.colorRBG()
		if err != nil {
			return err
		}
		if i < int(count) {
			colors = append(colors, c)
		}
	}
	p.Speed = ctrl & 0x0f
	p.Colors = colors
	return nil
}

func (p BreathingParams) encode(w *writer) {
	w.put(p.Speed&0x0f|0x40, uint8(len(p.Colors)))
	for _, c := range p.Colors {
		w.putColorRBG(c)
	}
	for i := len(p.Colors); i < MaxBreathingColors; i++ {
		w.putColorRBG(Color{})
	}
}

func (p *TailParams) decode(r *reader) error {
	ctrl, err := r.u8()
	if err != nil {
		return err
	}
	p.Speed = ctrl & 0x0f
	p.Brightness = ctrl >> 4
	return nil
}

func (p TailParams) encode(w *writer) {
	w.put(p.Speed&0x0f | p.Brightness<<4)
}

func (p *SeamlessBreathingParams) decode(r *reader) error {
	ctrl, err := r.u8()
	if err != nil {
		return err
	}
	p.Speed = ctrl & 0x0f
	return nil
}

func (p SeamlessBreathingParams) encode(w *writer) {
	w.put(p.Speed&0x0f | 0x40)
}

func (p *ConstantRGBParams) decode(r *reader) error {
	// Control byte carries nothing for this effect.
	if _, err := r.u8(); err != nil {
		return err
	}
	colors := make([]Color, 0, MaxConstantRGBColors)
	for i := 0; i < MaxConstantRGBColors; i++ {
		c, err := r.colorRBG()
		if err != nil {
			return err
		}
		colors = append(colors, c)
	}
	p.Colors = colors
	return nil
}

func (p ConstantRGBParams) encode(w *writer) {
	w.put(0x00)
	for _, c := range p.Colors {
		w.putColorRBG(c)
	}
	for i := len(p.Colors); i < MaxConstantRGBColors; i++ {
		w.putColorRBG(Color{})
	}
}

func (p *RaveParams) decode(r *reader) error {
	ctrl, err := r.u8()
	if err != nil {
		return err
	}
	colors := make([]Color, 0, MaxRaveColors)
	for i := 0; i < MaxRaveColors; i++ {
		c, err := r.colorRBG()
		if err != nil {
			return err
		}
		colors = append(colors, c)
	}
	p.Speed = ctrl & 0x0f
	p.Brightness = ctrl >> 4
	p.Colors = colors
	return nil
}

func (p RaveParams) encode(w *writer) {
	w.put(p.Speed&0x0f | p.Brightness<<4)
	for _, c := range p.Colors {
		w.putColorRBG(c)
	}
	for i := len(p.Colors); i < MaxRaveColors; i++ {
		w.putColorRBG(Color{})
	}
}

func (p *RandomParams) decode(r *reader) error {
	ctrl, err := r.u8()
	if err != nil {
		return err
	}
	p.Speed = ctrl & 0x0f
	return nil
}

func (p RandomParams) encode(w *writer) {
	w.put(p.Speed & 0x0f)
}

func (p *WaveParams) decode(r *reader) error {
	ctrl, err := r.u8()
	if err != nil {
		return err
	}
	p.Speed = ctrl & 0x0f
	p.Brightness = ctrl >> 4
	return nil
}

func (p WaveParams) encode(w *writer) {
	w.put(p.Speed&0x0f | p.Brightness<<4)
}

func (p *SingleBreathingParams) decode(r *reader) error {
	ctrl, err := r.u8()
	if err != nil {
		return err
	}
	c, err := r.colorRBG()
	if err != nil {
		return err
	}
	p.Speed = ctrl & 0x0f
	p.Color = c
	return nil
}

func (p SingleBreathingParams) encode(w *writer) {
	w.put(p.Speed & 0x0f)
	w.putColorRBG(p.Color)
}
