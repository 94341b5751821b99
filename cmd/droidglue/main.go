package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/disintegration/imaging"
	"github.com/droidglue/droidglue"
	"github.com/droidglue/droidglue/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌┬┐┬─┐┌─┐┬┌┬┐┌─┐┬  ┬ ┬┌─┐
 ││├┬┘│ ││ ││││ ││  │ │├┤
─┴┘┴└─└─┘┴─┴┘└─┘┴─┘└─┘└─┘

Platform capability shim - clipboard and browser access.
    Version: %s

`

// Version indicates the current build version.
var Version string

// maxImageDim caps the dimensions of images placed on the clipboard, so an
// oversized photo does not balloon into an enormous PNG.
const maxImageDim = 4096

var (
	// Flags
	getText = flag.Bool("get", false, "Print the clipboard text")
	setText = flag.String("set", "", "Copy the given text to the clipboard")
	imgPath = flag.String("img", "", "Copy the given image file to the clipboard as PNG")
	openURL = flag.String("open", "", "Open the URL with the system browser")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, fmt.Sprintf(HelpBanner, Version))
		flag.PrintDefaults()
	}
	flag.Parse()

	// Disable the color escapes when the output is piped somewhere.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		utils.NoColor = true
	}

	if !*getText && *setText == "" && *imgPath == "" && *openURL == "" {
		flag.Usage()
		log.Fatal(utils.DecorateText("\nPlease provide a clipboard or browser operation!", utils.ErrorMessage))
	}

	mgr := droidglue.NewManager(droidglue.SystemClipboard{}, &droidglue.SystemBrowser{})
	now := time.Now()

	if *getText || *setText != "" || *imgPath != "" {
		mgr.InitClipboard()
		if mgr.ClipboardState() == droidglue.Failed {
			log.Fatal(utils.DecorateText("The clipboard is not available: "+mgr.LastClipboardError(), utils.ErrorMessage))
		}
	}
	if *openURL != "" {
		mgr.InitBrowser()
		if mgr.BrowserState() == droidglue.Failed {
			log.Fatal(utils.DecorateText("The browser is not available: "+mgr.LastBrowserError(), utils.ErrorMessage))
		}
	}

	if *setText != "" {
		mgr.SetClipboardText(*setText)
		printStatus("text copied to the clipboard", mgr.LastClipboardError())
	}

	if *imgPath != "" {
		ctype, isImage, err := utils.DetectImageContentType(*imgPath)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the source image: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		if !isImage {
			log.Fatal(utils.DecorateText(fmt.Sprintf("%v file type not supported", ctype), utils.ErrorMessage))
		}
		img, err := imaging.Open(*imgPath, imaging.AutoOrientation(true))
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to decode the source image: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		bounds := img.Bounds()
		if bounds.Dx() > maxImageDim || bounds.Dy() > maxImageDim {
			img = imaging.Fit(img, maxImageDim, maxImageDim, imaging.Lanczos)
		}
		mgr.SetClipboardImage(img)
		printStatus("image copied to the clipboard", mgr.LastClipboardError())
	}

	if *getText {
		text := mgr.GetClipboardText()
		if lastErr := mgr.LastClipboardError(); lastErr != "" {
			log.Fatal(utils.DecorateText(lastErr, utils.ErrorMessage))
		}
		fmt.Println(text)
	}

	if *openURL != "" {
		mgr.OpenURL(*openURL)
		printStatus("URL handed to the system browser", mgr.LastBrowserError())
	}

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// printStatus reports the outcome of a capability operation. Failures abort:
// the whole point of the tool is the side effect.
func printStatus(action, lastErr string) {
	if lastErr != "" {
		log.Fatal(utils.DecorateText(lastErr, utils.ErrorMessage))
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", utils.DecorateText("✔", utils.SuccessMessage), action)
}
