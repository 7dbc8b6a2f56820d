package video

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Document is the JSON form of Metadata as served by the metadata endpoint.
// Absent optional values are nil pointers and are omitted on encode.
type Document struct {
	ID            *string               `json:"id,omitempty" jsonschema:"description=Backend identifier of the video."`
	Title         string                `json:"title" validate:"required" jsonschema:"description=Human-readable title."`
	Creator       *string               `json:"creator,omitempty" jsonschema:"description=Uploader or author name."`
	Description   *string               `json:"description,omitempty" jsonschema:"description=Free-form caption."`
	Thumbnail     *string               `json:"thumbnail,omitempty" jsonschema:"description=URL of a preview image."`
	Duration      *float64              `json:"duration,omitempty" validate:"omitempty,gte=0" jsonschema:"description=Playback length in seconds.,minimum=0"`
	WebpageURL    string                `json:"webpage_url" validate:"required" jsonschema:"description=Canonical page URL used for every download request."`
	WatermarkFree bool                  `json:"watermark_free_available" jsonschema:"description=Whether a variant without the platform watermark is available."`
	Formats       []DocumentFormat      `json:"formats" validate:"unique=FormatID,dive"`
	AudioFormats  []DocumentAudioFormat `json:"audio_formats" validate:"dive"`
}

// DocumentFormat is the JSON form of Format.
type DocumentFormat struct {
	FormatID   string   `json:"format_id" validate:"required" jsonschema:"description=Opaque backend identifier unique within formats."`
	Ext        string   `json:"ext"`
	Resolution *string  `json:"resolution,omitempty"`
	FormatNote *string  `json:"format_note,omitempty"`
	FPS        *float64 `json:"fps,omitempty" validate:"omitempty,gte=0"`
	Filesize   *float64 `json:"filesize,omitempty" validate:"omitempty,gte=0,lte=9e18" jsonschema:"description=Size in bytes."`
	Preference *float64 `json:"preference,omitempty" jsonschema:"description=Ranking hint where higher is better. Absent ranks as 0."`
	TBR        *float64 `json:"tbr,omitempty"`
	VCodec     *string  `json:"vcodec,omitempty"`
	ACodec     *string  `json:"acodec,omitempty"`
}

// DocumentAudioFormat is the JSON form of AudioFormat.
type DocumentAudioFormat struct {
	FormatID   string   `json:"format_id" validate:"required"`
	Ext        string   `json:"ext"`
	ABR        *float64 `json:"abr,omitempty" validate:"omitempty,gte=0" jsonschema:"description=Average bitrate in kbps."`
	Filesize   *float64 `json:"filesize,omitempty" validate:"omitempty,gte=0,lte=9e18"`
	FormatNote *string  `json:"format_note,omitempty"`
}

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// Decode reads a single metadata document from r and validates it.
// Validation failures and mistyped fields wrap ErrInvalidMetadata; syntax and read errors are returned as is.
func Decode(r io.Reader) (*Metadata, error) {
	var m Metadata
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Parse is Decode for an in-memory document.
func Parse(data []byte) (*Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var w Document
	if err := json.Unmarshal(data, &w); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("%w: %s has the wrong type", ErrInvalidMetadata, typeErr.Field)
		}
		return err
	}

	if err := validate.Struct(&w); err != nil {
		return invalid(err)
	}

	*m = w.toMetadata()
	return nil
}

// MarshalJSON implements json.Marshaler using the backend's field names.
func (m Metadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Document())
}

func invalid(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidMetadata, err)
	}

	fe := errs[0]
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", ErrInvalidMetadata, field)
	case "unique":
		return fmt.Errorf("%w: %s contains duplicate format_id values", ErrInvalidMetadata, field)
	default:
		return fmt.Errorf("%w: %s failed %s=%s", ErrInvalidMetadata, field, fe.Tag(), fe.Param())
	}
}

func (w *Document) toMetadata() Metadata {
	return Metadata{
		ID:            text(w.ID),
		Title:         w.Title,
		Creator:       text(w.Creator),
		Description:   text(w.Description),
		Thumbnail:     text(w.Thumbnail),
		Duration:      mo.PointerToOption(w.Duration),
		SourcePageURL: w.WebpageURL,
		WatermarkFree: w.WatermarkFree,
		Formats: lo.Map(w.Formats, func(f DocumentFormat, _ int) Format {
			return Format{
				ID:         f.FormatID,
				Extension:  f.Ext,
				Resolution: text(f.Resolution),
				Note:       text(f.FormatNote),
				FPS:        positive(f.FPS),
				Size:       bytes(f.Filesize),
				Preference: mo.PointerToOption(f.Preference),
				Bitrate:    positive(f.TBR),
				VideoCodec: text(f.VCodec),
				AudioCodec: text(f.ACodec),
			}
		}),
		AudioFormats: lo.Map(w.AudioFormats, func(f DocumentAudioFormat, _ int) AudioFormat {
			return AudioFormat{
				ID:        f.FormatID,
				Extension: f.Ext,
				Bitrate:   positive(f.ABR),
				Size:      bytes(f.Filesize),
				Note:      text(f.FormatNote),
			}
		}),
	}
}

// Document converts m into its JSON form.
func (m *Metadata) Document() *Document {
	return &Document{
		ID:            m.ID.ToPointer(),
		Title:         m.Title,
		Creator:       m.Creator.ToPointer(),
		Description:   m.Description.ToPointer(),
		Thumbnail:     m.Thumbnail.ToPointer(),
		Duration:      m.Duration.ToPointer(),
		WebpageURL:    m.SourcePageURL,
		WatermarkFree: m.WatermarkFree,
		Formats: lo.Map(m.Formats, func(f Format, _ int) DocumentFormat {
			return DocumentFormat{
				FormatID:   f.ID,
				Ext:        f.Extension,
				Resolution: f.Resolution.ToPointer(),
				FormatNote: f.Note.ToPointer(),
				FPS:        f.FPS.ToPointer(),
				Filesize:   sizePointer(f.Size),
				Preference: f.Preference.ToPointer(),
				TBR:        f.Bitrate.ToPointer(),
				VCodec:     f.VideoCodec.ToPointer(),
				ACodec:     f.AudioCodec.ToPointer(),
			}
		}),
		AudioFormats: lo.Map(m.AudioFormats, func(f AudioFormat, _ int) DocumentAudioFormat {
			return DocumentAudioFormat{
				FormatID:   f.ID,
				Ext:        f.Extension,
				ABR:        f.Bitrate.ToPointer(),
				Filesize:   sizePointer(f.Size),
				FormatNote: f.Note.ToPointer(),
			}
		}),
	}
}

// text treats missing and blank strings alike.
func text(p *string) mo.Option[string] {
	if p == nil || strings.TrimSpace(*p) == "" {
		return mo.None[string]()
	}
	return mo.Some(*p)
}

// positive drops zero rates, which the backend reports when it does not know them.
func positive(p *float64) mo.Option[float64] {
	if p == nil || *p <= 0 {
		return mo.None[float64]()
	}
	return mo.Some(*p)
}

func bytes(p *float64) mo.Option[int64] {
	if p == nil {
		return mo.None[int64]()
	}
	return mo.Some(int64(math.Round(*p)))
}

func sizePointer(o mo.Option[int64]) *float64 {
	size, ok := o.Get()
	if !ok {
		return nil
	}
	f := float64(size)
	return &f
}
