package cmd

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptloom/promptloom/internal/passport"
	"github.com/promptloom/promptloom/internal/pipeline"
)

var passportCmd = &cobra.Command{
	Use:   "passport",
	Short: "Passport photo utilities",
	Long:  "Resize, tile, validate and generate passport photos for US 2x2 inch printing.",
}

var passportResizeCmd = &cobra.Command{
	Use:   "resize <input> <output>",
	Short: "Resize a photo to passport dimensions",
	Args:  cobra.ExactArgs(2),
	RunE:  runPassportResize,
}

var passportTileCmd = &cobra.Command{
	Use:   "tile <input> <output>",
	Short: "Tile four passport photos onto a 6x4 inch print sheet",
	Args:  cobra.ExactArgs(2),
	RunE:  runPassportTile,
}

var passportValidateCmd = &cobra.Command{
	Use:   "validate <input>",
	Short: "Check a photo against passport requirements",
	Args:  cobra.ExactArgs(1),
	RunE:  runPassportValidate,
}

var passportPromptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the passport photo generation prompt",
	RunE:  runPassportPrompt,
}

var passportEditCmd = &cobra.Command{
	Use:   "edit <input> <output>",
	Short: "Convert a photo to a passport photo via the image edit endpoint",
	Args:  cobra.ExactArgs(2),
	RunE:  runPassportEdit,
}

func init() {
	rootCmd.AddCommand(passportCmd)
	passportCmd.AddCommand(passportResizeCmd)
	passportCmd.AddCommand(passportTileCmd)
	passportCmd.AddCommand(passportValidateCmd)
	passportCmd.AddCommand(passportPromptCmd)
	passportCmd.AddCommand(passportEditCmd)

	passportResizeCmd.Flags().String("size", passport.SizePrint600, "Target size: "+strings.Join(passport.SizeNames(), ", "))
	passportResizeCmd.Flags().String("crop", string(passport.CropCenter), "Crop mode: center, top, none")
	passportResizeCmd.Flags().Int("jpeg-quality", 95, "JPEG quality (1-100)")

	passportTileCmd.Flags().Int("jpeg-quality", 95, "JPEG quality (1-100)")

	passportPromptCmd.Flags().Bool("default", true, "Use the standard passport prompt")
	passportPromptCmd.Flags().String("custom", "", "Custom prompt (used when --default=false)")
	passportPromptCmd.Flags().String("append", "", "Extra tags appended to the prompt")

	passportEditCmd.Flags().Bool("default", true, "Use the standard passport prompt")
	passportEditCmd.Flags().String("custom", "", "Custom prompt (used when --default=false)")
	passportEditCmd.Flags().String("append", "", "Extra tags appended to the prompt")
	passportEditCmd.Flags().Int("steps", 20, "Diffusion steps")
}

func runPassportResize(cmd *cobra.Command, args []string) error {
	sizeKey, _ := cmd.Flags().GetString("size")
	cropName, _ := cmd.Flags().GetString("crop")
	jpegQuality, _ := cmd.Flags().GetInt("jpeg-quality")

	src, err := decodeImageFile(args[0])
	if err != nil {
		return err
	}

	dst, info, err := passport.Resize(src, sizeKey, passport.CropMode(strings.ToLower(strings.TrimSpace(cropName))))
	if err != nil {
		return err
	}
	if err := encodeImageFile(args[1], dst, jpegQuality); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), info)
	return nil
}

func runPassportTile(cmd *cobra.Command, args []string) error {
	jpegQuality, _ := cmd.Flags().GetInt("jpeg-quality")

	src, err := decodeImageFile(args[0])
	if err != nil {
		return err
	}

	sheet := passport.Tile(src)
	if err := encodeImageFile(args[1], sheet, jpegQuality); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote 6x4 inch print sheet (4 photos) to %s\n", args[1])
	return nil
}

func runPassportValidate(cmd *cobra.Command, args []string) error {
	src, err := decodeImageFile(args[0])
	if err != nil {
		return err
	}

	v := passport.Validate(src)
	fmt.Fprintf(cmd.OutOrStdout(), "Dimensions: %s\n", v.Dimensions)
	fmt.Fprintf(cmd.OutOrStdout(), "Square: %v\n", v.IsSquare)
	fmt.Fprintf(cmd.OutOrStdout(), "Meets 300px digital minimum: %v\n", v.MeetsMinSize)
	fmt.Fprintf(cmd.OutOrStdout(), "Meets 600px print minimum: %v\n", v.MeetsPrintSize)
	fmt.Fprintf(cmd.OutOrStdout(), "Recommendation: %s\n", v.Recommendation)
	return nil
}

func runPassportPrompt(cmd *cobra.Command, args []string) error {
	useDefault, _ := cmd.Flags().GetBool("default")
	custom, _ := cmd.Flags().GetString("custom")
	appendTags, _ := cmd.Flags().GetString("append")

	prompt, negative := passport.Prompt(useDefault, custom, appendTags)
	fmt.Fprintf(cmd.OutOrStdout(), "Prompt: %s\n", prompt)
	fmt.Fprintf(cmd.OutOrStdout(), "Negative: %s\n", negative)
	return nil
}

func runPassportEdit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	useDefault, _ := cmd.Flags().GetBool("default")
	custom, _ := cmd.Flags().GetString("custom")
	appendTags, _ := cmd.Flags().GetString("append")
	steps, _ := cmd.Flags().GetInt("steps")

	imageBytes, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading input image: %w", err)
	}

	prompt, negative := passport.Prompt(useDefault, custom, appendTags)

	manager := pipeline.NewManager(pipeline.Settings{
		Endpoint: cfg.Pipeline.Endpoint,
		APIKey:   cfg.Pipeline.APIKey,
		Model:    cfg.Pipeline.Model,
		Timeout:  cfg.Pipeline.Timeout,
	})
	client, err := manager.Acquire(cmd.Context())
	if err != nil {
		return err
	}

	resp, err := client.Edit(cmd.Context(), &pipeline.EditRequest{
		Prompt:   prompt,
		Negative: negative,
		Image:    imageBytes,
		Steps:    steps,
	})
	if err != nil {
		return fmt.Errorf("image edit failed: %w", err)
	}

	if err := os.WriteFile(args[1], resp.Image, 0o644); err != nil {
		return fmt.Errorf("writing output image: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote edited passport photo to %s\n", args[1])
	return nil
}

func decodeImageFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // nolint:errcheck

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

func encodeImageFile(path string, img image.Image, jpegQuality int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close() // nolint:errcheck

	return encodeImage(f, img, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."), jpegQuality)
}

func encodeImage(w io.Writer, img image.Image, format string, jpegQuality int) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "jpeg", "jpg", "":
		q := jpegQuality
		if q < 1 {
			q = 1
		}
		if q > 100 {
			q = 100
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
