package handlers

import (
	"encoding/json"
	"mime/multipart"
	"strconv"

	"makecut/internal/domain/entities"
	"makecut/internal/usecases"
	"makecut/pkg/constants"
	"makecut/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type VideoHandler struct {
	videoService usecases.VideoService
}

func NewVideoHandler(videoService usecases.VideoService) *VideoHandler {
	return &VideoHandler{videoService: videoService}
}

// Upload
//
// @Summary      Upload Video
// @Description  Stores the uploaded video on the remote media store and returns its retrieval URL
// @Tags         Video
// @Accept       multipart/form-data
// @Produce      json
// @Param        video  formData  file  true  "Video file"
// @Success      200    {object}  dto.UploadResponse
// @Failure      400    {object}  errors.ErrorResponse
// @Failure      500    {object}  errors.ErrorResponse
// @Router       /api/upload [post]
func (h *VideoHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := videoFile(c)
	if err != nil {
		return errors.HandleError(c, err)
	}

	response, err := h.videoService.Upload(c.Context(), fileHeader)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(response)
}

// CutVideo
//
// @Summary      Cut Video
// @Description  Uploads a video and returns one derived-asset URL for the requested time range
// @Tags         Video
// @Accept       multipart/form-data
// @Produce      json
// @Param        video      formData  file    true  "Video file"
// @Param        startTime  formData  number  true  "Cut start offset in seconds"
// @Param        endTime    formData  number  true  "Cut end offset in seconds"
// @Success      200        {object}  dto.CutVideoResponse
// @Failure      400        {object}  errors.ErrorResponse
// @Failure      500        {object}  errors.ErrorResponse
// @Router       /api/cut-video [post]
func (h *VideoHandler) CutVideo(c *fiber.Ctx) error {
	fileHeader, err := videoFile(c)
	if err != nil {
		return errors.HandleError(c, err)
	}

	cut, err := parseCutForm(c.FormValue("startTime"), c.FormValue("endTime"))
	if err != nil {
		return errors.HandleError(c, err)
	}

	response, err := h.videoService.CutSingle(c.Context(), fileHeader, cut)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(response)
}

// CutVideoMultiple
//
// @Summary      Cut Video Multiple
// @Description  Uploads a video once and composes one derived-asset URL per requested cut; failing cuts do not abort the rest
// @Tags         Video
// @Accept       multipart/form-data
// @Produce      json
// @Param        video  formData  file    true  "Video file"
// @Param        cuts   formData  string  true  "JSON array of {startTime,endTime,name?}"
// @Success      200    {object}  dto.MultiCutResponse
// @Failure      400    {object}  errors.ErrorResponse
// @Failure      500    {object}  errors.ErrorResponse
// @Router       /api/cut-video-multiple [post]
func (h *VideoHandler) CutVideoMultiple(c *fiber.Ctx) error {
	fileHeader, err := videoFile(c)
	if err != nil {
		return errors.HandleError(c, err)
	}

	raw := c.FormValue(constants.FieldCuts)
	if raw == "" {
		return errors.HandleError(c, errors.ErrInvalidRequest("A cuts field is required"))
	}
	var cuts []entities.CutSpec
	if err := json.Unmarshal([]byte(raw), &cuts); err != nil {
		return errors.HandleError(c, errors.ErrInvalidRequest("The cuts field is not valid JSON"))
	}

	response, err := h.videoService.CutMultiple(c.Context(), fileHeader, cuts)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(response)
}

// VideoInfo
//
// @Summary      Video Info
// @Description  Returns basic info about the uploaded file; duration is simulated, the backend never decodes media
// @Tags         Video
// @Accept       multipart/form-data
// @Produce      json
// @Param        video  formData  file  true  "Video file"
// @Success      200    {object}  dto.VideoInfoResponse
// @Failure      400    {object}  errors.ErrorResponse
// @Router       /api/video-info [post]
func (h *VideoHandler) VideoInfo(c *fiber.Ctx) error {
	fileHeader, err := videoFile(c)
	if err != nil {
		return errors.HandleError(c, err)
	}

	response, err := h.videoService.VideoInfo(fileHeader)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(response)
}

// GenerateSubtitles
//
// @Summary      Generate Subtitles
// @Description  Returns placeholder subtitle cues for the uploaded video
// @Tags         Video
// @Accept       multipart/form-data
// @Produce      json
// @Param        video  formData  file  true  "Video file"
// @Success      200    {object}  dto.SubtitlesResponse
// @Failure      400    {object}  errors.ErrorResponse
// @Router       /api/generate-subtitles [post]
func (h *VideoHandler) GenerateSubtitles(c *fiber.Ctx) error {
	fileHeader, err := videoFile(c)
	if err != nil {
		return errors.HandleError(c, err)
	}

	response, err := h.videoService.GenerateSubtitles(fileHeader)
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(response)
}

// videoFile pulls exactly one file out of the "video" field.
func videoFile(c *fiber.Ctx) (*multipart.FileHeader, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, errors.ErrMissingFile(err)
	}
	files := form.File[constants.FieldVideo]
	if len(files) == 0 {
		return nil, errors.ErrMissingFile(nil)
	}
	if len(files) > 1 {
		return nil, errors.ErrInvalidRequest("Exactly one video file is expected")
	}
	return files[0], nil
}

func parseCutForm(startRaw, endRaw string) (entities.CutSpec, error) {
	if startRaw == "" || endRaw == "" {
		return entities.CutSpec{}, errors.ErrInvalidRequest("startTime and endTime are required")
	}
	start, err := strconv.ParseFloat(startRaw, 64)
	if err != nil {
		return entities.CutSpec{}, errors.ErrInvalidRequest("startTime is not a number")
	}
	end, err := strconv.ParseFloat(endRaw, 64)
	if err != nil {
		return entities.CutSpec{}, errors.ErrInvalidRequest("endTime is not a number")
	}
	return entities.CutSpec{StartTime: start, EndTime: end}, nil
}
