package convert

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lairegodd/multitools/internal/domain"
	"github.com/lairegodd/multitools/internal/engine/ffmpeg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscodeAudioToMP3(t *testing.T) {
	transcoder := &fakeTranscoder{output: []byte("mp3 frames")}
	svc, mgr := newTestService(t, nil, transcoder)

	up := stageBytes(t, mgr, "track.flac", "audio/flac", []byte("flac bytes"))

	result, err := svc.TranscodeAudio(context.Background(), up, "mp3", "320k")
	require.NoError(t, err)

	assert.Equal(t, "track.mp3", result.FileName)
	assert.Equal(t, "audio/mpeg", result.MimeType)
	assert.Equal(t, domain.FormatMP3, result.TargetFormat)
	assert.Equal(t, "320k", result.Bitrate)
	assert.Equal(t, []byte("mp3 frames"), result.Data)
	assert.Equal(t, int64(len(result.Data)), result.Size)

	assert.Equal(t, up.Path, transcoder.gotInput)
	assert.Equal(t, []string{"-c:a", "libmp3lame", "-b:a", "320k"}, transcoder.gotArgs)
}

func TestTranscodeAudioDefaultsBitrate(t *testing.T) {
	transcoder := &fakeTranscoder{output: []byte("ogg")}
	svc, mgr := newTestService(t, nil, transcoder)

	up := stageBytes(t, mgr, "voice.wav", "audio/wav", []byte("riff"))

	result, err := svc.TranscodeAudio(context.Background(), up, "ogg", "")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultBitrate, result.Bitrate)
	assert.Equal(t, []string{"-c:a", "libvorbis", "-b:a", domain.DefaultBitrate}, transcoder.gotArgs)
	assert.Equal(t, "audio/ogg", result.MimeType)
}

func TestTranscodeAudioWavForcesPCM(t *testing.T) {
	transcoder := &fakeTranscoder{output: []byte("riff")}
	svc, mgr := newTestService(t, nil, transcoder)

	up := stageBytes(t, mgr, "a.mp3", "audio/mpeg", []byte("mp3"))

	_, err := svc.TranscodeAudio(context.Background(), up, "wav", "320k")
	require.NoError(t, err)

	// wav ignores the bitrate entirely.
	assert.Equal(t, []string{"-c:a", "pcm_s16le"}, transcoder.gotArgs)
}

func TestTranscodeAudioRejectsDisallowedFormat(t *testing.T) {
	svc, mgr := newTestService(t, nil, nil)

	// flac is accepted as input but is not in the output allow-list.
	up := stageBytes(t, mgr, "a.mp3", "audio/mpeg", []byte("mp3"))

	_, err := svc.TranscodeAudio(context.Background(), up, "flac", "")
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Invalid target format", invalid.Reason)
}

func TestTranscodeAudioRejectsDisallowedInputType(t *testing.T) {
	svc, mgr := newTestService(t, nil, nil)

	up := stageBytes(t, mgr, "movie.mkv", "video/x-matroska", []byte("mkv"))

	_, err := svc.TranscodeAudio(context.Background(), up, "mp3", "")
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Invalid audio file type", invalid.Reason)
}

func TestTranscodeAudioSurfacesProcessFailure(t *testing.T) {
	transcoder := &fakeTranscoder{err: &ffmpeg.ProcessError{ExitCode: 1, Stderr: "Invalid data found"}}
	svc, mgr := newTestService(t, nil, transcoder)

	up := stageBytes(t, mgr, "a.ogg", "audio/ogg", []byte("ogg"))

	_, err := svc.TranscodeAudio(context.Background(), up, "mp3", "")
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Contains(t, convErr.Detail, "code 1")
	assert.Contains(t, convErr.Detail, "Invalid data found")
}

func TestTranscodeAudioReleasesOutputFile(t *testing.T) {
	transcoder := &fakeTranscoder{output: []byte("aac")}
	svc, mgr := newTestService(t, nil, transcoder)

	up := stageBytes(t, mgr, "a.wav", "audio/wav", []byte("riff"))

	_, err := svc.TranscodeAudio(context.Background(), up, "aac", "")
	require.NoError(t, err)

	_, statErr := os.Stat(transcoder.gotOutput)
	assert.True(t, os.IsNotExist(statErr), "staged output must be removed after reading")

	// The staged input is still the handler's to release.
	entries, err := os.ReadDir(filepath.Dir(up.Path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTranscodeAudioReleasesPartialOutputOnFailure(t *testing.T) {
	transcoder := &fakeTranscoder{err: &ffmpeg.ProcessError{ExitCode: 1, Stderr: "boom"}}
	svc, mgr := newTestService(t, nil, transcoder)

	up := stageBytes(t, mgr, "a.wav", "audio/wav", []byte("riff"))

	_, err := svc.TranscodeAudio(context.Background(), up, "mp3", "")
	require.Error(t, err)

	entries, readErr := os.ReadDir(filepath.Dir(up.Path))
	require.NoError(t, readErr)
	assert.Len(t, entries, 1, "no partial output may remain after a failed run")
}
