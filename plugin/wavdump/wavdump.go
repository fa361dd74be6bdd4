// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

// Package wavdump is a builtin audio plugin that writes the audio stream to
// disk as a WAV file. Note that audio data is buffered in memory in its
// entirety, and written to disk on plugin shutdown. It is therefore probably
// only suitable for testing purposes.
package wavdump

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher64/logger"
	"github.com/jetsetilly/gopher64/plugin"
)

// SampleFreq is the sample frequency the plugin announces to the core.
const SampleFreq = 44100

// the config section and key the output filename is read from.
const (
	configSection = "Audio-Wavdump"
	configOutput  = "Output"
)

const defaultOutput = "gopher64_audio.wav"

// WavDump implements the plugin.Plugin interface.
type WavDump struct {
	filename string
	buffer   []int
}

func init() {
	plugin.Register(&WavDump{})
}

// Name implements the plugin.Plugin interface.
func (aw *WavDump) Name() string {
	return "wavdump"
}

// PluginType implements the plugin.Plugin interface.
func (aw *WavDump) PluginType() plugin.Type {
	return plugin.TypeAudio
}

// Startup implements the plugin.Plugin interface. The output filename is
// read from the plugin's config section.
func (aw *WavDump) Startup(cfg plugin.ConfigStore) error {
	aw.filename = defaultOutput
	aw.buffer = aw.buffer[:0]

	sec, err := cfg.OpenSection(configSection)
	if err != nil {
		return fmt.Errorf("wavdump: %w", err)
	}

	if fn := sec.GetString(configOutput); fn != "" {
		aw.filename = fn
	}

	return nil
}

// SetAudio queues mono samples for writing on Shutdown.
func (aw *WavDump) SetAudio(samples []int16) error {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}
	return nil
}

// Shutdown implements the plugin.Plugin interface. The buffered samples are
// encoded and written to disk.
func (aw *WavDump) Shutdown() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavdump: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = fmt.Errorf("wavdump: %w", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleFreq, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	}

	err = enc.Write(buf)
	if err != nil {
		return fmt.Errorf("wavdump: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("wavdump: %w", err)
	}

	logger.Logf("wavdump", "audio written to %s", aw.filename)

	return nil
}
