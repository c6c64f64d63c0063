package game

// checkCollisions is the per-frame combat resolver. Categories are scanned
// in a fixed order and a bullet resolves against at most one of them per
// frame, first match wins: mystery ship, then invaders, then barriers for
// player bullets; player, then barriers for invader bullets.
func (g *Game) checkCollisions(now int64) {
	// Player bullets vs mystery ship, invaders, barriers
	for _, bullet := range g.playerBullets {
		if !bullet.Active {
			continue
		}

		bulletRect := bullet.Rect()
		hit := false

		if g.mystery.Active && bulletRect.CollidesWith(g.mystery.Rect()) {
			points := g.mystery.Hit()
			g.score += points
			bullet.Deactivate()
			hit = true
			g.addExplosion(g.mystery.X, g.mystery.Y, now)
			g.sounds.Stop("mystery_ship")
			g.sounds.Play("mystery_ship_hit")
		}

		if !hit {
			for _, inv := range g.invaders.Invaders {
				if !inv.Alive {
					continue
				}

				if bulletRect.CollidesWith(inv.Rect()) {
					inv.Alive = false
					g.invaders.InvaderKilled()
					g.score += inv.Points(g.cfg)
					bullet.Deactivate()
					hit = true
					g.addExplosion(inv.X, inv.Y, now)
					g.sounds.Play("invader_explosion")
					break
				}
			}
		}

		if !hit {
			for _, barrier := range g.barriers {
				if barrier.CheckCollision(bulletRect) {
					barrier.Damage(bulletRect)
					bullet.Deactivate()
					break
				}
			}
		}
	}
	g.playerBullets = pruneBullets(g.playerBullets)

	// Invader bullets vs player
	if g.player.Alive {
		playerRect := g.player.Rect()

		for _, bullet := range g.invaderBullets {
			if !bullet.Active {
				continue
			}

			if bullet.Rect().CollidesWith(playerRect) {
				g.player.Hit()
				bullet.Deactivate()
				g.addExplosion(g.player.X, g.player.Y, now)
				g.sounds.Play("player_explosion")

				if g.player.Lives <= 0 {
					g.gameOver(now)
				} else {
					g.player.StartRespawn(now, g.cfg.PlayerRespawnDelay)
				}
				break
			}
		}
	}

	// Remaining invader bullets vs barriers
	for _, bullet := range g.invaderBullets {
		if !bullet.Active {
			continue
		}

		bulletRect := bullet.Rect()
		for _, barrier := range g.barriers {
			if barrier.CheckCollision(bulletRect) {
				barrier.Damage(bulletRect)
				bullet.Deactivate()
				break
			}
		}
	}
	g.invaderBullets = pruneBullets(g.invaderBullets)
}
