package svg

import (
	"bytes"
	"fmt"
)

const graphCSS = `
    .taskgraph { font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; }
    .node, .edge { transition: opacity 0.15s ease; }
    .node { cursor: pointer; }
    .node.focus rect:first-of-type { stroke-width: 3; }
    .taskgraph.hovering .node:not(.related) { opacity: 0.35; }
    .taskgraph.hovering .edge:not(.related) { opacity: 0.2; }
    .taskgraph.hovering .node.related, .taskgraph.hovering .edge.related { opacity: 1; }
    .taskgraph.hovering .edge.related { stroke-width: 3; }`

// The walk mirrors the engine: every edge touching a visited task is
// marked, and only newly seen tasks are expanded, so cycles terminate.
const graphJS = `
    const root = document.querySelector('svg.taskgraph');
    const edges = Array.from(root.querySelectorAll('.edge'));
    function related(id) {
      const nodes = new Set([id]);
      const conns = new Set();
      const walk = (forward) => {
        const seen = new Set([id]);
        const stack = [id];
        while (stack.length) {
          const cur = stack.pop();
          for (const e of edges) {
            const here = forward ? e.dataset.from : e.dataset.to;
            const next = forward ? e.dataset.to : e.dataset.from;
            if (here !== cur) continue;
            conns.add(e.id);
            nodes.add(next);
            if (!seen.has(next)) { seen.add(next); stack.push(next); }
          }
        }
      };
      walk(true);
      walk(false);
      return { nodes, conns };
    }
    function highlight(id) {
      const r = related(id);
      root.classList.add('hovering');
      root.querySelectorAll('.node').forEach(n => n.classList.toggle('related', r.nodes.has(n.dataset.id)));
      edges.forEach(e => e.classList.toggle('related', r.conns.has(e.id)));
    }
    function clearHighlight() {
      root.classList.remove('hovering');
      root.querySelectorAll('.related').forEach(el => el.classList.remove('related'));
    }
    root.querySelectorAll('.node').forEach(n => {
      n.addEventListener('mouseenter', () => highlight(n.dataset.id));
      n.addEventListener('mouseleave', clearHighlight);
    });`

func renderStyle(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", graphCSS)
}

func renderScript(buf *bytes.Buffer) {
	fmt.Fprintf(buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", graphJS)
}
