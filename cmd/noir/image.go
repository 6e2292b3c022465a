package main

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	imageFile string
	imageMIME string
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Manage pasted images",
}

var imageSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Store an image and print its generated name",
	Long: `Copy an image into the images directory under a fresh unique name.
The media type comes from --mime, the file extension, or the file content, in that order.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(imageFile)
		if err != nil {
			fatal("Failed to read image", err)
		}

		mimeType := imageMIME
		if mimeType == "" {
			mimeType = mime.TypeByExtension(filepath.Ext(imageFile))
		}
		if mimeType == "" {
			mimeType = http.DetectContentType(data)
		}

		svc := openService()
		defer svc.Close()

		name, err := svc.SavePastedImage(context.Background(), data, mimeType)
		if err != nil {
			fatal("Failed to save image", err)
		}
		fmt.Println(name)
	},
}

var imagePathCmd = &cobra.Command{
	Use:   "path [name]",
	Short: "Print the images directory, or the location of one image",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		defer svc.Close()

		if len(args) == 0 {
			fmt.Println(svc.ImagesPath())
			return
		}
		fmt.Println(svc.ImagePath(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(imageCmd)
	imageCmd.AddCommand(imageSaveCmd, imagePathCmd)

	imageSaveCmd.Flags().StringVarP(&imageFile, "file", "f", "", "Image file to store")
	imageSaveCmd.Flags().StringVar(&imageMIME, "mime", "", "Media type, e.g. image/png")
	imageSaveCmd.MarkFlagRequired("file")
}
