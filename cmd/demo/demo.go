package main

import (
	"fmt"
	"log"
	"os"

	"cellkit/config"
	"cellkit/device"
	"cellkit/device/mock_device"
	"cellkit/device/tcell"
	"cellkit/events"
	"cellkit/renderer"
	"cellkit/ui"
	"cellkit/widgets"
)

type (
	nameChanged   string
	boldToggled   bool
	sizePicked    string
	volumeChanged float64
	fruitPicked   string
)

func main() {
	log.SetFlags(0)

	configPath := "cellkit.yaml"
	sim := false
	for i := 1; i < len(os.Args); i++ {
		switch os.Args[i] {
		case "-sim":
			sim = true
		case "-config":
			if i+1 < len(os.Args) {
				i++
				configPath = os.Args[i]
			}
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Invalid config: %v", err)
		return
	}

	logFile, err := os.Create(cfg.LogFile)
	if err != nil {
		log.Printf("Failed to create log file: %v", err)
		return
	}
	defer logFile.Close()
	logger := log.New(logFile, "", 0)

	root := build(cfg, logger)

	var dev device.Device
	if sim {
		dev = mock_device.NewScripted(60, 24,
			events.Down(2, 2),
			events.Rune('B'),
			events.Rune('o'),
			events.Down(2, 5),
			events.Down(30, 8),
			events.Ctrl('q'),
		)
	} else {
		dev, err = tcell.New()
		if err != nil {
			log.Printf("Failed to open terminal: %v", err)
			return
		}
	}

	r := renderer.New(dev, root,
		renderer.WithDispatcher(renderer.DispatchFunc(dispatch)),
		renderer.WithLogger(logger),
	)
	if err := r.Run(); err != nil {
		log.Printf("Terminal failed: %v", err)
	}
	logger.Printf("final tree:\n%s", root)
	if sim {
		fmt.Println(root)
	}
}

func build(cfg config.Config, logger *log.Logger) *widgets.FlexBox {
	theme := cfg.Theme

	title := widgets.NewText(" cellkit demo  (Ctrl+Q quits)")
	title.TextStyle = theme.AccentStyle().Bold(true)

	name := widgets.NewTextInput("")
	name.SetRounded(true)
	name.OnInput(func(value string) any { return nameChanged(value) })

	bold := widgets.NewCheckbox("bold status")
	bold.OnInput(func(checked bool) any { return boldToggled(checked) })

	sizes := widgets.Row()
	for _, label := range []string{"small", "medium", "large"} {
		radio := widgets.NewRadio(label)
		radio.SetID("size-" + label)
		radio.OnInput(func(bool) any { return sizePicked(label) })
		sizes.AddChild(radio)
		sizes.AddChild(widgets.FixedSpacer(2, 1))
	}

	volume := widgets.NewSlider(0.5)
	volume.OnInput(func(value float64) any { return volumeChanged(value) })

	fruits := widgets.NewListBox("apple", "banana", "cherry", "durian", "elderberry", "fig", "grape")
	fruits.OnSelect(func(_ int, item string) any { return fruitPicked(item) })

	status := widgets.NewText("ready")
	status.SetID("status")
	status.TextStyle = theme.Style()

	body := widgets.Row(fruits)
	if cfg.Image != "" {
		if img, err := loadImage(cfg.Image); err != nil {
			logger.Printf("image: %v", err)
		} else {
			body.AddChild(img)
		}
	}
	body.SetFlexGrow(1)

	root := widgets.Column(
		widgets.NewStyled(theme.Style(), title),
		name,
		bold,
		sizes,
		volume,
		body,
		status,
	)
	return root
}

func loadImage(path string) (*widgets.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return widgets.NewImage(data)
}

func dispatch(msg any, root ui.Widget) {
	widget, _, ok := ui.FindByID(root, "status")
	if !ok {
		log.Panicf("### status line is missing")
	}
	status := widget.(*widgets.Text)

	switch msg := msg.(type) {
	case nameChanged:
		status.SetText(fmt.Sprintf("hello, %s", string(msg)))
	case boldToggled:
		status.TextStyle = status.TextStyle.Bold(bool(msg))
	case sizePicked:
		ui.Walk(root, func(_ int, w ui.Widget) bool {
			if radio, ok := w.(*widgets.Radio); ok && radio.ID() != "size-"+string(msg) {
				radio.SetChecked(false)
			}
			return true
		})
		status.SetText(fmt.Sprintf("size: %s", string(msg)))
	case volumeChanged:
		status.SetText(fmt.Sprintf("volume: %3.0f%%", float64(msg)*100))
	case fruitPicked:
		status.SetText(fmt.Sprintf("fruit: %s", string(msg)))
	default:
		log.Panicf("### unhandled message: %#v", msg)
	}
}
