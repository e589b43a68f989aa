package cli

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png" // foreground bitmaps
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/gogpu/shadowlayout"
	"github.com/gogpu/shadowlayout/integration/ggcanvas"
)

const (
	defaultWidth         = 480         // default canvas width
	defaultHeight        = 280         // default canvas height
	defaultContentWidth  = 320         // card content width in wrap mode
	defaultContentHeight = 160         // card content height in wrap mode
	defaultBackground    = "#FFECEFF1" // canvas color behind the card
	defaultAccent        = "#FF3F51B5" // content title bar color
	rippleDrawable       = "ripple"    // built-in foreground name
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	config     string // TOML attribute file
	output     string // PNG path
	width      int    // canvas width in pixels
	height     int    // canvas height in pixels
	wrap       bool   // size the card to its content instead of the canvas
	contentW   int    // content width in wrap mode
	contentH   int    // content height in wrap mode
	gravity    string // child gravity inside the card
	rtl        bool   // right-to-left layout direction
	background string // canvas color
	accent     string // content accent color
}

func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		output:     "card.png",
		width:      defaultWidth,
		height:     defaultHeight,
		contentW:   defaultContentWidth,
		contentH:   defaultContentHeight,
		background: defaultBackground,
		accent:     defaultAccent,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a card to PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.config, "config", "c", "", "TOML attribute file (default: built-in demo card)")
	f.StringVarP(&opts.output, "output", "o", opts.output, "output PNG file")
	f.IntVar(&opts.width, "width", opts.width, "canvas width in pixels")
	f.IntVar(&opts.height, "height", opts.height, "canvas height in pixels")
	f.BoolVar(&opts.wrap, "wrap", false, "size the card to its content")
	f.IntVar(&opts.contentW, "content-width", opts.contentW, "content width with --wrap")
	f.IntVar(&opts.contentH, "content-height", opts.contentH, "content height with --wrap")
	f.StringVar(&opts.gravity, "gravity", "", "child gravity, e.g. center or bottom|end")
	f.BoolVar(&opts.rtl, "rtl", false, "lay out right to left")
	f.StringVar(&opts.background, "background", opts.background, "canvas color (#AARRGGBB)")
	f.StringVar(&opts.accent, "accent", opts.accent, "content accent color (#AARRGGBB)")
	return cmd
}

func newAttrsCmd() *cobra.Command {
	var config string
	cmd := &cobra.Command{
		Use:   "attrs",
		Short: "Print the effective card attributes as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := loadAttributes(config)
			if err != nil {
				return err
			}
			return toml.NewEncoder(cmd.OutOrStdout()).Encode(attrs)
		},
	}
	cmd.Flags().StringVarP(&config, "config", "c", "", "TOML attribute file (default: built-in demo card)")
	return cmd
}

// demoAttributes is the card used when no attribute file is given.
func demoAttributes() shadowlayout.Attributes {
	a := shadowlayout.DefaultAttributes()
	margin := 24
	radius := 14.0
	a.ShadowMargin = &margin
	a.CornerRadius = &radius
	a.ShadowRadius = 16
	a.ShadowDy = 6
	a.ShadowColor = "#40000000"
	a.Foreground = rippleDrawable
	return a
}

func loadAttributes(path string) (shadowlayout.Attributes, error) {
	if path == "" {
		return demoAttributes(), nil
	}
	return shadowlayout.LoadAttributes(path)
}

func runRender(ctx context.Context, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	attrs, err := loadAttributes(opts.config)
	if err != nil {
		return err
	}
	background, err := shadowlayout.ParseColor(opts.background)
	if err != nil {
		return fmt.Errorf("--background: %w", err)
	}
	accent, err := shadowlayout.ParseColor(opts.accent)
	if err != nil {
		return fmt.Errorf("--accent: %w", err)
	}
	gravity, err := shadowlayout.ParseGravity(opts.gravity)
	if err != nil {
		return fmt.Errorf("--gravity: %w", err)
	}

	canvas, err := ggcanvas.New(opts.width, opts.height)
	if err != nil {
		return err
	}
	defer canvas.Close()

	dim := shadowlayout.MatchParent
	if opts.wrap {
		dim = shadowlayout.WrapContent
	}
	params := shadowlayout.LayoutParams{Width: dim, Height: dim}
	childParams := shadowlayout.LayoutParams{Width: dim, Height: dim, Gravity: gravity}
	child := newContentNode(childParams, shadowlayout.Size{Width: opts.contentW, Height: opts.contentH}, accent)

	direction := shadowlayout.LeftToRight
	if opts.rtl {
		direction = shadowlayout.RightToLeft
	}

	card, err := shadowlayout.NewFromAttributes(attrs, newResolver(opts.config),
		shadowlayout.WithChild(child),
		shadowlayout.WithLayoutParams(params),
		shadowlayout.WithLayoutDirection(direction),
	)
	if err != nil {
		return err
	}

	m := card.Measure(canvasSpecs(opts))
	left := (opts.width - m.Width) / 2
	top := (opts.height - m.Height) / 2
	card.Layout(shadowlayout.Rect{Left: left, Top: top, Right: left + m.Width, Bottom: top + m.Height})
	logger.Debug("card laid out", "width", m.Width, "height", m.Height, "left", left, "top", top)

	canvas.SetBackground(background)
	if err := canvas.Clear(); err != nil {
		return err
	}
	if err := canvas.Render(card, ggcanvas.RenderOptions{UseBounds: true, Children: child.draw}); err != nil {
		return err
	}
	if err := canvas.SavePNG(opts.output); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", opts.output))
	return nil
}

// canvasSpecs bounds the card by the canvas, or fills it without --wrap.
func canvasSpecs(opts renderOpts) (width, height shadowlayout.MeasureSpec) {
	if opts.wrap {
		return shadowlayout.AtMost(opts.width), shadowlayout.AtMost(opts.height)
	}
	return shadowlayout.Exactly(opts.width), shadowlayout.Exactly(opts.height)
}

// newResolver resolves foreground names. "ripple" is a flat overlay tinted
// with the foreground color; any other name is a PNG path relative to the
// attribute file.
func newResolver(config string) shadowlayout.DrawableResolver {
	base := "."
	if config != "" {
		base = filepath.Dir(config)
	}
	return shadowlayout.DrawableResolverFunc(func(name string) (shadowlayout.Drawable, error) {
		if name == rippleDrawable {
			return ggcanvas.NewColorDrawable(shadowlayout.DefaultForegroundColor), nil
		}
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(base, path)
		}
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", shadowlayout.ErrUnknownDrawable, name)
			}
			return nil, err
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return ggcanvas.NewImageDrawable(img), nil
	})
}
