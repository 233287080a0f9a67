// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

// Package apu implements the audio processing unit of the console.
//
// The APU has four channels: two square wave channels (the first with a
// frequency sweep), a channel playing a 32 sample wave pattern and a noise
// channel. A frame sequencer clocked at 512Hz drives the length counters,
// the sweep unit and the volume envelopes.
//
// The output of each channel is mixed into the left and right terminals
// according to NR51 and scaled by the terminal volumes in NR50. The mixed
// output is averaged over the period of one output sample and the resulting
// samples are delivered to a Sink in batches.
package apu
