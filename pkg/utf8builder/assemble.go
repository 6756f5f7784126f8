// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utf8builder

import "context"

// Result is the single value emitted by Assemble: the finalized text, or the
// error that ended the assembly.
type Result struct {
	Text string
	Err  error
}

// Assemble is a channel-based assembly stage: it consumes byte chunks from
// `in`, feeds them to a fresh Builder, and emits exactly one Result on the
// returned channel.
//
// Streaming contract:
//
//   - Assemble NEVER closes `in`. The upstream stage owns the input channel.
//   - Assemble closes the returned channel exactly once, when it is done.
//   - When `in` is closed by upstream, the Result carries the Finalize
//     outcome: the validated text, or ErrInvalidEncoding if the stream ended
//     in the middle of a character.
//   - When a chunk is rejected, the Result carries the ingestion error and
//     no further chunks are read. Upstream must watch ctx (or select on its
//     own sends) to avoid blocking on a stage that stopped consuming.
//   - Every receive and every send is performed in a select that also
//     watches ctx.Done(). On cancellation the output channel closes without
//     emitting a Result.
//
// Chunks are pushed as received; the caller keeps ownership of each slice
// once the corresponding send has been accepted.
func Assemble(ctx context.Context, in <-chan []byte) <-chan Result {
	out := make(chan Result)

	go func() {
		defer close(out)

		b := New()
		emit := func(r Result) {
			select {
			case <-ctx.Done():
			case out <- r:
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case chunk, ok := <-in:
				if !ok {
					text, err := b.Finalize()
					if err != nil {
						emit(Result{Err: err})
					} else {
						emit(Result{Text: text})
					}
					return
				}
				if err := b.PushChunk(chunk); err != nil {
					emit(Result{Err: err})
					return
				}
			}
		}
	}()

	return out
}
