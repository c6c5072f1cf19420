package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iudanet/minahasa-guide/internal/catalog"
	"github.com/iudanet/minahasa-guide/internal/viewer"
	"github.com/iudanet/minahasa-guide/internal/viewer/webview"
)

// Размер текстового холста
const (
	canvasWidth  = 64
	canvasHeight = 32
)

type viewOptions struct {
	frames uint64
	dragX  float64
	dragY  float64
	spin   float64
	addr   string
}

func (c *Cli) newViewCmd() *cobra.Command {
	var opts viewOptions

	cmd := &cobra.Command{
		Use:   "view <id|model>",
		Short: "Show the 3D model of a cultural object",
		Long: `Show the 3D model of a catalog item, or of a model reference:
a bundled asset (models/waruga.gltf), a local file or an http(s) URL.
Remote models are shown in the browser.`,
		Example: `  guide view 7
  guide view 8 --drag-x 120 --frames 30 --spin 5
  guide view https://example.com/model.glb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := c.modelRequest(args[0])
			if err != nil {
				return fail(err)
			}

			ctx := cmd.Context()
			view := c.viewer.Open(ctx, req)
			switch view.State {
			case viewer.ViewNative:
				return c.renderNative(ctx, view, opts)
			case viewer.ViewWeb:
				return c.serveWeb(ctx, webview.Config{
					Addr:        opts.addr,
					Name:        req.Name,
					ModelURL:    view.RemoteURL,
					Description: req.Description,
				})
			default:
				c.printModelError(view)
				return nil
			}
		},
	}

	cmd.Flags().Uint64Var(&opts.frames, "frames", 1, "number of frames to render")
	cmd.Flags().Float64Var(&opts.dragX, "drag-x", 0, "horizontal drag in pixels before rendering")
	cmd.Flags().Float64Var(&opts.dragY, "drag-y", 0, "vertical drag in pixels before rendering")
	cmd.Flags().Float64Var(&opts.spin, "spin", 0, "horizontal drag in pixels between frames")
	cmd.Flags().StringVar(&opts.addr, "addr", "127.0.0.1:0", "listen address of the web viewer for remote models")
	return cmd
}

// modelRequest строит запрос по id элемента каталога или по ссылке на модель
func (c *Cli) modelRequest(arg string) (viewer.ModelViewRequest, error) {
	item, err := c.catalog.ByID(arg)
	if errors.Is(err, catalog.ErrItemNotFound) {
		return viewer.ModelViewRequest{Name: arg, ModelURL: arg}, nil
	}
	if err != nil {
		return viewer.ModelViewRequest{}, err
	}
	if !item.HasModel() {
		return viewer.ModelViewRequest{}, fmt.Errorf("%s has no 3D model", item.Name)
	}
	return viewer.ModelViewRequest{
		Name:        item.Name,
		ModelURL:    item.Model,
		Description: item.Description,
	}, nil
}

func (c *Cli) renderNative(ctx context.Context, view *viewer.View, opts viewOptions) error {
	scene := view.Scene
	scene.Rotation.Drag(opts.dragX, opts.dragY)

	canvas := viewer.NewTextRenderer(canvasWidth, canvasHeight)
	renderer := viewer.RendererFunc(func(ctx context.Context, frame viewer.Frame) error {
		if err := canvas.Render(ctx, frame); err != nil {
			return err
		}
		if opts.spin != 0 {
			scene.Rotation.Drag(opts.spin, 0)
		}
		return nil
	})

	loop := &viewer.Loop{
		Scene:     scene,
		Renderer:  renderer,
		MaxFrames: max(opts.frames, 1),
	}
	if _, err := loop.Run(ctx); err != nil {
		c.printModelError(&viewer.View{Request: view.Request, Err: err, State: viewer.ViewFailed})
		return nil
	}

	yaw, pitch := scene.Rotation.Angles()
	c.io.Printf("=== %s ===\n", scene.Model.Name)
	c.io.Println(canvas.Last())
	c.io.Printf("yaw %.2f rad, pitch %.2f rad, %d vertices\n", yaw, pitch, len(scene.Model.Vertices))
	return nil
}

func (c *Cli) printModelError(view *viewer.View) {
	c.io.Println("=== 3D model unavailable ===")
	c.io.Println()
	c.io.Printf("%s\n", view.Request.Name)

	var (
		resErr    *viewer.ModelResolutionError
		loadErr   *viewer.ModelLoadError
		renderErr *viewer.RenderError
	)
	switch {
	case errors.As(view.Err, &resErr):
		c.io.Println("The model could not be found.")
	case errors.As(view.Err, &loadErr):
		c.io.Println("The model file could not be read.")
	case errors.As(view.Err, &renderErr):
		c.io.Println("The model could not be displayed.")
	default:
		c.io.Println("The model could not be opened.")
	}
	c.io.Printf("Details: %v\n", view.Err)
}

func (c *Cli) newServeViewerCmd() *cobra.Command {
	var cfg webview.Config

	cmd := &cobra.Command{
		Use:   "serve-viewer <modelURL>",
		Short: "Serve a web page that shows a remote 3D model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.ModelURL = args[0]
			if cfg.Name == "" {
				cfg.Name = args[0]
			}
			return c.serveWeb(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.Addr, "addr", "127.0.0.1:0", "listen address")
	cmd.Flags().StringVar(&cfg.Name, "name", "", "title of the page")
	cmd.Flags().StringVar(&cfg.Description, "description", "", "text under the model")
	cmd.Flags().StringSliceVar(&cfg.AllowedOrigins, "allowed-origin", nil, "CORS allowed origins")
	return cmd
}

// serveWeb обслуживает web viewer до отмены ctx (Ctrl+C)
func (c *Cli) serveWeb(ctx context.Context, cfg webview.Config) error {
	server, err := webview.NewServer(cfg, c.logger)
	if err != nil {
		return err
	}
	return server.Run(ctx, func(url string) {
		c.io.Printf("Open %s in your browser, press Ctrl+C to stop\n", url)
	})
}
