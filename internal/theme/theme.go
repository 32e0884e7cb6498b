// Package theme holds the colour palettes and resolves the user's theme
// selection, including "system", to the single active palette.
package theme

// Role is a semantic colour slot.
type Role string

const (
	Primary              Role = "primary"
	OnPrimary            Role = "on-primary"
	PrimaryContainer     Role = "primary-container"
	OnPrimaryContainer   Role = "on-primary-container"
	Secondary            Role = "secondary"
	OnSecondary          Role = "on-secondary"
	SecondaryContainer   Role = "secondary-container"
	OnSecondaryContainer Role = "on-secondary-container"
	OnTertiary           Role = "on-tertiary"
	OnError              Role = "on-error"
	Background           Role = "background"
	OnBackground         Role = "on-background"
	Surface              Role = "surface"
	OnSurface            Role = "on-surface"
	SurfaceVariant       Role = "surface-variant"
	OnSurfaceVariant     Role = "on-surface-variant"
	Outline              Role = "outline"
	InverseSurface       Role = "inverse-surface"
	InverseOnSurface     Role = "inverse-on-surface"
)

// Theme names in cycle order.
const (
	Default  = "default"
	Ocean    = "ocean"
	Forest   = "forest"
	Sunset   = "sunset"
	Lavender = "lavender"
	Dark     = "dark"
	System   = "system"
)

// neutral is used when a palette has neither the requested role nor
// on-surface.
const neutral = "#808080"

var themeOrder = []string{Default, Ocean, Forest, Sunset, Lavender, Dark, System}

// Palette is a concrete colour mapping. Selection is what the user picked;
// Name is the palette that was actually applied.
type Palette struct {
	Selection string
	Name      string
	IsDark    bool
	Colors    map[Role]string
}

// Color returns the value for role, falling back to on-surface.
func (p Palette) Color(role Role) string {
	if c, ok := p.Colors[role]; ok && c != "" {
		return c
	}
	if c, ok := p.Colors[OnSurface]; ok && c != "" {
		return c
	}
	return neutral
}

// Clone returns p with its own Colors map.
func (p Palette) Clone() Palette {
	colors := make(map[Role]string, len(p.Colors))
	for role, c := range p.Colors {
		colors[role] = c
	}
	p.Colors = colors
	return p
}

// Names returns the selectable theme names, "system" last.
func Names() []string {
	out := make([]string, len(themeOrder))
	copy(out, themeOrder)
	return out
}

// Valid reports whether name is a selectable theme.
func Valid(name string) bool {
	for _, n := range themeOrder {
		if n == name {
			return true
		}
	}
	return false
}

// NextTheme returns the theme after current, wrapping around.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// Get returns the palette for a concrete theme name. Unknown names and
// "system" return the default palette; use a Resolver for "system".
func Get(name string) Palette {
	build, ok := palettes[name]
	if !ok {
		name = Default
		build = palettes[Default]
	}
	p := build()
	p.Selection = name
	p.Name = name
	return p
}

var palettes = map[string]func() Palette{
	Default:  defaultPalette,
	Ocean:    oceanPalette,
	Forest:   forestPalette,
	Sunset:   sunsetPalette,
	Lavender: lavenderPalette,
	Dark:     darkPalette,
}

func lightBase() map[Role]string {
	return map[Role]string{
		OnPrimary:        "#FFFFFF",
		OnSecondary:      "#FFFFFF",
		OnTertiary:       "#FFFFFF",
		OnError:          "#FFFFFF",
		OnBackground:     "#1C1B1F",
		OnSurface:        "#1C1B1F",
		Outline:          "#79747E",
		InverseSurface:   "#313033",
		InverseOnSurface: "#F4EFF4",
	}
}

func light(colors map[Role]string) Palette {
	base := lightBase()
	for k, v := range colors {
		base[k] = v
	}
	return Palette{Colors: base}
}

func defaultPalette() Palette {
	return light(map[Role]string{
		Primary:              "#6750A4",
		PrimaryContainer:     "#EADDFF",
		OnPrimaryContainer:   "#21005D",
		Secondary:            "#625B71",
		SecondaryContainer:   "#E8DEF8",
		OnSecondaryContainer: "#1D192B",
		Background:           "#F3F3F7",
		Surface:              "#FFFBFE",
		SurfaceVariant:       "#E7E0EC",
		OnSurfaceVariant:     "#49454F",
	})
}

func oceanPalette() Palette {
	return light(map[Role]string{
		Primary:              "#00658E",
		PrimaryContainer:     "#C7E7FF",
		OnPrimaryContainer:   "#001E2E",
		Secondary:            "#4F616E",
		SecondaryContainer:   "#D2E5F5",
		OnSecondaryContainer: "#0B1E29",
		Background:           "#F8F9FA",
		Surface:              "#FCFCFF",
		SurfaceVariant:       "#DDE3EA",
		OnSurfaceVariant:     "#41484D",
	})
}

func forestPalette() Palette {
	return light(map[Role]string{
		Primary:              "#3A6A20",
		PrimaryContainer:     "#B9F397",
		OnPrimaryContainer:   "#042100",
		Secondary:            "#55624C",
		SecondaryContainer:   "#D9E7CB",
		OnSecondaryContainer: "#131F0D",
		Background:           "#F5F7F1",
		Surface:              "#FDFCF7",
		SurfaceVariant:       "#E0E4D7",
		OnSurfaceVariant:     "#43483E",
	})
}

func sunsetPalette() Palette {
	return light(map[Role]string{
		Primary:              "#8F4C00",
		PrimaryContainer:     "#FFDCC2",
		OnPrimaryContainer:   "#2E1500",
		Secondary:            "#745944",
		SecondaryContainer:   "#FFDCC2",
		OnSecondaryContainer: "#2A1707",
		Background:           "#FFF3EC",
		Surface:              "#FFFBF8",
		SurfaceVariant:       "#F2DFD1",
		OnSurfaceVariant:     "#51443A",
	})
}

func lavenderPalette() Palette {
	return light(map[Role]string{
		Primary:              "#5B52A7",
		PrimaryContainer:     "#E3DFFF",
		OnPrimaryContainer:   "#160261",
		Secondary:            "#5E5C71",
		SecondaryContainer:   "#E4E0F9",
		OnSecondaryContainer: "#1B192C",
		Background:           "#F6F4FA",
		Surface:              "#FFFBFF",
		SurfaceVariant:       "#E5E1EC",
		OnSurfaceVariant:     "#47464F",
	})
}

func darkPalette() Palette {
	return Palette{
		IsDark: true,
		Colors: map[Role]string{
			Primary:            "#D0BCFF",
			OnPrimary:          "#381E72",
			PrimaryContainer:   "#4F378B",
			OnPrimaryContainer: "#EADDFF",
			Secondary:          "#CCC2DC",
			OnSecondary:        "#332D41",
			Background:         "#141218",
			OnBackground:       "#E6E1E5",
			Surface:            "#1C1B1F",
			OnSurface:          "#E6E1E5",
			SurfaceVariant:     "#49454F",
			OnSurfaceVariant:   "#CAC4D0",
			Outline:            "#938F99",
			InverseSurface:     "#E6E1E5",
			InverseOnSurface:   "#313033",
		},
	}
}
