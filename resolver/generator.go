/*
 * MailRoute - Copyright (C) 2022 Zane van Iperen.
 *    Contact: zane@zanevaniperen.com
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License version 2, and only
 * version 2 as published by the Free Software Foundation.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 59 Temple Place, Suite 330, Boston, MA  02111-1307  USA
 */

package resolver

import (
	"math/rand"
	"sync"
	"time"
)

const (
	LocalPartAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	LocalPartLength   = 16
)

type Generator interface {
	LocalPart() string
}

type RandomGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomGenerator(src rand.Source) *RandomGenerator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &RandomGenerator{rng: rand.New(src)}
}

// LocalPart draws each character uniformly from LocalPartAlphabet.
// No uniqueness check is made against existing rules.
func (g *RandomGenerator) LocalPart() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := make([]byte, LocalPartLength)
	for i := range b {
		b[i] = LocalPartAlphabet[g.rng.Intn(len(LocalPartAlphabet))]
	}
	return string(b)
}
